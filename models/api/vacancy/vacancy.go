package vacancyapimodels

import (
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"employability-backend/models"
	dbmodels "employability-backend/models/db"
)

type VacancyData struct {
	Title         string          `json:"title"`          // название вакансии
	Description   string          `json:"description"`    // описание
	Technologies  []string        `json:"technologies"`   // требуемые технологии
	Seniority     string          `json:"seniority"`      // уровень кандидата
	SoftSkills    string          `json:"soft_skills"`    // гибкие навыки
	Location      string          `json:"location"`       // локация
	Modality      models.Modality `json:"modality"`       // формат работы
	SalaryRange   string          `json:"salary_range"`   // вилка зарплаты
	Company       string          `json:"company"`        // компания
	MaxApplicants int             `json:"max_applicants"` // максимум откликов
}

func (v VacancyData) Validate(isUpdate bool) error {
	if !isUpdate {
		if v.Title == "" {
			return errors.New("не указано название вакансии")
		}
		if v.Company == "" {
			return errors.New("не указана компания")
		}
	}
	if err := v.Modality.Validate(); err != nil {
		return err
	}
	return nil
}

// Availability - производные поля доступности, пересчитываются на каждом чтении
type Availability struct {
	CurrentApplicants int  `json:"current_applicants"` // занято слотов
	AvailableSlots    int  `json:"available_slots"`    // свободно слотов, без округления до нуля
	HasAvailableSlots bool `json:"has_available_slots"`
}

// ComputeAvailability - чистая функция от вакансии и её откликов, без побочных эффектов
func ComputeAvailability(maxApplicants int, applications []dbmodels.Application) Availability {
	current := len(applications)
	return Availability{
		CurrentApplicants: current,
		AvailableSlots:    maxApplicants - current,
		HasAvailableSlots: current < maxApplicants,
	}
}

type VacancyView struct {
	VacancyData
	Availability
	ID           string            `json:"id"`
	IsActive     bool              `json:"is_active"`
	ModalityName string            `json:"modality_name"`
	Applicants   []ApplicantView   `json:"applicants,omitempty"` // заполняется только в карточке вакансии
	CreationDate time.Time         `json:"creation_date"`
}

// ApplicantView - краткая карточка откликнувшегося в детализации вакансии
type ApplicantView struct {
	ApplicationID string    `json:"application_id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	AppliedAt     time.Time `json:"applied_at"`
}

func VacancyConvert(rec dbmodels.Vacancy) VacancyView {
	return VacancyView{
		VacancyData: VacancyData{
			Title:         rec.Title,
			Description:   rec.Description,
			Technologies:  lo.Map(rec.Technologies, func(t dbmodels.Technology, _ int) string { return t.Name }),
			Seniority:     rec.Seniority,
			SoftSkills:    rec.SoftSkills,
			Location:      rec.Location,
			Modality:      rec.Modality,
			SalaryRange:   rec.SalaryRange,
			Company:       rec.Company,
			MaxApplicants: rec.MaxApplicants,
		},
		Availability: ComputeAvailability(rec.MaxApplicants, rec.Applications),
		ID:           rec.ID,
		IsActive:     rec.IsActive,
		ModalityName: rec.Modality.ToHuman(),
		CreationDate: rec.CreatedAt,
	}
}

// VacancyConvertDetail дополняет карточку списком откликнувшихся
func VacancyConvertDetail(rec dbmodels.Vacancy) VacancyView {
	result := VacancyConvert(rec)
	result.Applicants = make([]ApplicantView, 0, len(rec.Applications))
	for _, app := range rec.Applications {
		item := ApplicantView{
			ApplicationID: app.ID,
			UserID:        app.UserID,
			AppliedAt:     app.CreatedAt,
		}
		if app.User != nil {
			item.Name = app.User.Name
			item.Email = app.User.Email
		}
		result.Applicants = append(result.Applicants, item)
	}
	return result
}

type GenDescriptionRequest struct {
	Brief string `json:"brief"` // вводные данные для генерации описания
}

func (r GenDescriptionRequest) Validate() error {
	if r.Brief == "" {
		return errors.New("не указаны вводные данные для генерации")
	}
	return nil
}

type GenDescriptionResponse struct {
	Description string `json:"description"`
}
