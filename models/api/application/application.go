package applicationapimodels

import (
	"time"

	"github.com/pkg/errors"

	userapimodels "employability-backend/models/api/user"
	vacancyapimodels "employability-backend/models/api/vacancy"
	dbmodels "employability-backend/models/db"
)

type ApplicationData struct {
	VacancyID string `json:"vacancy_id"` // ид вакансии
}

func (r ApplicationData) Validate() error {
	if r.VacancyID == "" {
		return errors.New("не указана вакансия")
	}
	return nil
}

type ApplicationView struct {
	ID        string                         `json:"id"`
	UserID    string                         `json:"user_id"`
	VacancyID string                         `json:"vacancy_id"`
	AppliedAt time.Time                      `json:"applied_at"`
	User      *userapimodels.UserView        `json:"user,omitempty"`
	Vacancy   *vacancyapimodels.VacancyView  `json:"vacancy,omitempty"`
}

func ApplicationConvert(rec dbmodels.Application) ApplicationView {
	result := ApplicationView{
		ID:        rec.ID,
		UserID:    rec.UserID,
		VacancyID: rec.VacancyID,
		AppliedAt: rec.CreatedAt,
	}
	if rec.User != nil {
		userView := userapimodels.UserConvert(*rec.User)
		result.User = &userView
	}
	if rec.Vacancy != nil {
		vacancyView := vacancyapimodels.VacancyConvert(*rec.Vacancy)
		result.Vacancy = &vacancyView
	}
	return result
}
