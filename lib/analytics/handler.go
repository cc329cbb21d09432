package analytics

import (
	"bytes"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"employability-backend/db"
	xlsexport "employability-backend/lib/export/xls"
	initchecker "employability-backend/lib/utils/init-checker"
	vacancystore "employability-backend/lib/vacancy/store"
	analyticsapimodels "employability-backend/models/api/analytics"
	vacancyapimodels "employability-backend/models/api/vacancy"
)

type Provider interface {
	Overview() (analyticsapimodels.OverviewData, error)
	OverviewExportToXls() (*bytes.Buffer, error)
	// Rebuild принудительно пересчитывает сводку, используется фоновой задачей
	Rebuild() (analyticsapimodels.OverviewData, error)
}

var Instance Provider

const overviewCacheKey = "overview"

func NewHandler() {
	instance := &impl{
		store: vacancystore.NewInstance(db.DB),
		cache: cache.New(time.Minute, 5*time.Minute),
	}
	initchecker.CheckInit(
		"xlsExport", xlsexport.Instance,
	)
	Instance = instance
}

type impl struct {
	store vacancystore.Provider
	cache *cache.Cache
}

func (i *impl) Overview() (analyticsapimodels.OverviewData, error) {
	if cached, ok := i.cache.Get(overviewCacheKey); ok {
		return cached.(analyticsapimodels.OverviewData), nil
	}
	return i.Rebuild()
}

func (i *impl) OverviewExportToXls() (*bytes.Buffer, error) {
	data, err := i.Overview()
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportOverview(data)
}

func (i *impl) Rebuild() (analyticsapimodels.OverviewData, error) {
	data := analyticsapimodels.OverviewData{
		Vacancies: []analyticsapimodels.VacancyFillData{},
	}
	list, err := i.store.List(true)
	if err != nil {
		return data, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	for _, vacancy := range list {
		availability := vacancyapimodels.ComputeAvailability(vacancy.MaxApplicants, vacancy.Applications)
		fillRate := float64(0)
		if vacancy.MaxApplicants > 0 {
			fillRate = float64(availability.CurrentApplicants) / float64(vacancy.MaxApplicants)
		}
		data.Vacancies = append(data.Vacancies, analyticsapimodels.VacancyFillData{
			VacancyID:         vacancy.ID,
			Title:             vacancy.Title,
			Company:           vacancy.Company,
			IsActive:          vacancy.IsActive,
			MaxApplicants:     vacancy.MaxApplicants,
			CurrentApplicants: availability.CurrentApplicants,
			AvailableSlots:    availability.AvailableSlots,
			FillRate:          fillRate,
		})
		data.TotalVacancies++
		if vacancy.IsActive {
			data.ActiveVacancies++
		}
		data.TotalApplications += availability.CurrentApplicants
	}
	i.cache.Set(overviewCacheKey, data, cache.DefaultExpiration)
	return data, nil
}
