package analytics

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"employability-backend/db"
	xlsexport "employability-backend/lib/export/xls"
	"employability-backend/models"
	dbmodels "employability-backend/models/db"
)

func setupTest(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	db.DB = conn
	require.NoError(t, db.AutoMigrateDB())
	xlsexport.NewHandler()
	NewHandler()
}

func seedVacancy(t *testing.T, title string, maxApplicants int, isActive bool, applicants int) {
	rec := dbmodels.Vacancy{
		Title:         title,
		Company:       "Рога и Копыта",
		MaxApplicants: maxApplicants,
		IsActive:      isActive,
	}
	require.NoError(t, db.DB.Create(&rec).Error)
	for n := 0; n < applicants; n++ {
		user := dbmodels.User{
			Name:     "Кандидат",
			Email:    fmt.Sprintf("%s-%d@example.com", rec.ID, n),
			Password: "hash",
			Role:     models.UserRoleCoder,
		}
		require.NoError(t, db.DB.Create(&user).Error)
		require.NoError(t, db.DB.Create(&dbmodels.Application{
			UserID:    user.ID,
			VacancyID: rec.ID,
		}).Error)
	}
}

func TestOverview(t *testing.T) {
	t.Run(`сводка считает вакансии и отклики`, func(t *testing.T) {
		setupTest(t)
		seedVacancy(t, "Первая", 2, true, 2)
		seedVacancy(t, "Вторая", 5, true, 1)
		seedVacancy(t, "Закрытая", 3, false, 0)

		data, err := Instance.Overview()
		require.NoError(t, err)
		require.Equal(t, 3, data.TotalVacancies)
		require.Equal(t, 2, data.ActiveVacancies)
		require.Equal(t, 3, data.TotalApplications)
		require.Len(t, data.Vacancies, 3)

		for _, item := range data.Vacancies {
			if item.Title != "Первая" {
				continue
			}
			require.Equal(t, 2, item.CurrentApplicants)
			require.Equal(t, 0, item.AvailableSlots)
			require.InDelta(t, 1.0, item.FillRate, 0.001)
		}
	})

	t.Run(`сводка кэшируется до пересчета`, func(t *testing.T) {
		setupTest(t)
		seedVacancy(t, "Первая", 2, true, 0)

		data, err := Instance.Overview()
		require.NoError(t, err)
		require.Equal(t, 0, data.TotalApplications)

		seedVacancy(t, "Вторая", 2, true, 1)
		data, err = Instance.Overview()
		require.NoError(t, err)
		require.Equal(t, 1, data.TotalVacancies)

		data, err = Instance.Rebuild()
		require.NoError(t, err)
		require.Equal(t, 2, data.TotalVacancies)
		require.Equal(t, 1, data.TotalApplications)
	})
}

func TestOverviewExport(t *testing.T) {
	t.Run(`выгрузка формирует непустой файл`, func(t *testing.T) {
		setupTest(t)
		seedVacancy(t, "Первая", 2, true, 1)

		buf, err := Instance.OverviewExportToXls()
		require.NoError(t, err)
		require.NotZero(t, buf.Len())
	})
}
