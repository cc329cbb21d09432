package analyticsapimodels

// VacancyFillData - заполненность вакансии откликами
type VacancyFillData struct {
	VacancyID         string  `json:"vacancy_id"`
	Title             string  `json:"title"`
	Company           string  `json:"company"`
	IsActive          bool    `json:"is_active"`
	MaxApplicants     int     `json:"max_applicants"`
	CurrentApplicants int     `json:"current_applicants"`
	AvailableSlots    int     `json:"available_slots"`
	FillRate          float64 `json:"fill_rate"` // доля занятых слотов, 0..1 и выше при переполнении
}

type OverviewData struct {
	Vacancies         []VacancyFillData `json:"vacancies"`
	TotalVacancies    int               `json:"total_vacancies"`
	ActiveVacancies   int               `json:"active_vacancies"`
	TotalApplications int               `json:"total_applications"`
}
