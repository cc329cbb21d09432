package vacancyhandler

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"employability-backend/db"
	technologyhandler "employability-backend/lib/technology"
	"employability-backend/lib/utils/apperr"
	vacancystore "employability-backend/lib/vacancy/store"
	"employability-backend/models"
	vacancyapimodels "employability-backend/models/api/vacancy"
	dbmodels "employability-backend/models/db"
)

type Provider interface {
	Create(data vacancyapimodels.VacancyData) (item vacancyapimodels.VacancyView, err error)
	GetByID(id string) (item vacancyapimodels.VacancyView, err error)
	Update(id string, data vacancyapimodels.VacancyData) (item vacancyapimodels.VacancyView, err error)
	ToggleActive(id string) (item vacancyapimodels.VacancyView, err error)
	List(includeInactive bool) (list []vacancyapimodels.VacancyView, err error)
	HasAvailableSlots(id string) (hasSlots bool, err error)
	ApplicationsCount(id string) (count int, err error)
	GetRecByID(id string) (rec *dbmodels.Vacancy, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:              vacancystore.NewInstance(db.DB),
		technologyResolver: technologyhandler.Instance,
	}
}

type impl struct {
	store              vacancystore.Provider
	technologyResolver technologyhandler.Provider
}

func (i impl) Create(data vacancyapimodels.VacancyData) (vacancyapimodels.VacancyView, error) {
	if data.MaxApplicants < 1 {
		return vacancyapimodels.VacancyView{}, apperr.InvalidState("необходимо указать корректный максимум откликов")
	}
	technologies, err := i.technologyResolver.FindOrCreate(data.Technologies)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	modality := data.Modality
	if modality == "" {
		modality = models.ModalityRemote
	}
	rec := dbmodels.Vacancy{
		Title:         data.Title,
		Description:   data.Description,
		Seniority:     data.Seniority,
		SoftSkills:    data.SoftSkills,
		Location:      data.Location,
		Modality:      modality,
		SalaryRange:   data.SalaryRange,
		Company:       data.Company,
		MaxApplicants: data.MaxApplicants,
		IsActive:      true,
		Technologies:  technologies,
	}
	recID, err := i.store.Create(rec)
	if err != nil {
		return vacancyapimodels.VacancyView{}, errors.Wrap(err, "ошибка создания вакансии")
	}
	log.
		WithField("rec_id", recID).
		Info("Создана вакансия")
	return i.GetByID(recID)
}

func (i impl) GetByID(id string) (vacancyapimodels.VacancyView, error) {
	rec, err := i.store.GetByIDWithApplicants(id)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	if rec == nil {
		return vacancyapimodels.VacancyView{}, apperr.NotFound("вакансия не найдена")
	}
	return vacancyapimodels.VacancyConvertDetail(*rec), nil
}

func (i impl) Update(id string, data vacancyapimodels.VacancyData) (vacancyapimodels.VacancyView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	if rec == nil {
		return vacancyapimodels.VacancyView{}, apperr.NotFound("вакансия не найдена")
	}
	if data.MaxApplicants < 0 {
		return vacancyapimodels.VacancyView{}, apperr.InvalidState("необходимо указать корректный максимум откликов")
	}
	if data.Technologies != nil {
		technologies, err := i.technologyResolver.FindOrCreate(data.Technologies)
		if err != nil {
			return vacancyapimodels.VacancyView{}, err
		}
		if err = i.store.ReplaceTechnologies(id, technologies); err != nil {
			return vacancyapimodels.VacancyView{}, errors.Wrap(err, "ошибка обновления технологий вакансии")
		}
	}
	updMap := map[string]interface{}{}
	if data.Title != "" {
		updMap["title"] = data.Title
	}
	if data.Description != "" {
		updMap["description"] = data.Description
	}
	if data.Seniority != "" {
		updMap["seniority"] = data.Seniority
	}
	if data.SoftSkills != "" {
		updMap["soft_skills"] = data.SoftSkills
	}
	if data.Location != "" {
		updMap["location"] = data.Location
	}
	if data.Modality != "" {
		updMap["modality"] = data.Modality
	}
	if data.SalaryRange != "" {
		updMap["salary_range"] = data.SalaryRange
	}
	if data.Company != "" {
		updMap["company"] = data.Company
	}
	if data.MaxApplicants > 0 {
		updMap["max_applicants"] = data.MaxApplicants
	}
	if len(updMap) != 0 {
		if err = i.store.Update(id, updMap); err != nil {
			return vacancyapimodels.VacancyView{}, errors.Wrap(err, "ошибка изменения вакансии")
		}
	}
	return i.GetByID(id)
}

// ToggleActive переключает прием откликов; запись не удаляется,
// неактивная вакансия остается в истории
func (i impl) ToggleActive(id string) (vacancyapimodels.VacancyView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	if rec == nil {
		return vacancyapimodels.VacancyView{}, apperr.NotFound("вакансия не найдена")
	}
	err = i.store.Update(id, map[string]interface{}{"is_active": !rec.IsActive})
	if err != nil {
		return vacancyapimodels.VacancyView{}, errors.Wrap(err, "ошибка переключения статуса вакансии")
	}
	log.
		WithField("rec_id", id).
		WithField("is_active", !rec.IsActive).
		Info("Изменен статус вакансии")
	return i.GetByID(id)
}

func (i impl) List(includeInactive bool) ([]vacancyapimodels.VacancyView, error) {
	list, err := i.store.List(includeInactive)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	return lo.Map(list, func(rec dbmodels.Vacancy, _ int) vacancyapimodels.VacancyView {
		return vacancyapimodels.VacancyConvert(rec)
	}), nil
}

// HasAvailableSlots - тихий предикат для пайплайна откликов:
// по отсутствующей вакансии возвращает false без ошибки,
// в отличие от GetByID, который отдает NotFound
func (i impl) HasAvailableSlots(id string) (bool, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, nil
	}
	return rec.HasAvailableSlots(), nil
}

func (i impl) ApplicationsCount(id string) (int, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return 0, err
	}
	if rec == nil {
		return 0, nil
	}
	return rec.CurrentApplicants(), nil
}

// GetRecByID отдает сырую запись для смежных обработчиков (пайплайн откликов, экспорт)
func (i impl) GetRecByID(id string) (*dbmodels.Vacancy, error) {
	return i.store.GetByID(id)
}
