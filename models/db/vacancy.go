package dbmodels

import (
	"employability-backend/models"
)

type Vacancy struct {
	BaseModel
	Title         string          `gorm:"type:varchar(255)"`
	Description   string          `gorm:"type:text"`
	Seniority     string          `gorm:"type:varchar(100)"`
	SoftSkills    string          `gorm:"type:text"`
	Location      string          `gorm:"type:varchar(100)"`
	Modality      models.Modality `gorm:"type:varchar(100);default:'remote'"`
	SalaryRange   string          `gorm:"type:varchar(100)"`
	Company       string          `gorm:"type:varchar(255)"`
	MaxApplicants int
	IsActive      bool
	Technologies  []Technology  `gorm:"many2many:vacancy_technologies"`
	Applications  []Application `gorm:"foreignKey:VacancyID"`
}

// CurrentApplicants - число занятых слотов, всегда считается по связям на чтении
func (v Vacancy) CurrentApplicants() int {
	return len(v.Applications)
}

// AvailableSlots может быть отрицательным, если максимум снизили после набора откликов
func (v Vacancy) AvailableSlots() int {
	return v.MaxApplicants - len(v.Applications)
}

func (v Vacancy) HasAvailableSlots() bool {
	return len(v.Applications) < v.MaxApplicants
}
