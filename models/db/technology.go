package dbmodels

// Technology - справочник технологий, имя хранится в нижнем регистре
type Technology struct {
	BaseModel
	Name      string    `gorm:"type:varchar(100);uniqueIndex"`
	Vacancies []Vacancy `gorm:"many2many:vacancy_technologies"`
}
