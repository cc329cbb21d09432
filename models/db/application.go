package dbmodels

// Application - отклик кандидата на вакансию.
// Запись неизменяемая: создается пайплайном проверок, удаляется только владельцем.
// Уникальный индекс (user_id, vacancy_id) - страховка от гонки двух параллельных откликов.
type Application struct {
	BaseModel
	UserID    string `gorm:"type:varchar(36);uniqueIndex:idx_user_vacancy"`
	VacancyID string `gorm:"type:varchar(36);uniqueIndex:idx_user_vacancy"`
	User      *User
	Vacancy   *Vacancy
}
