package vacancyhandler

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"employability-backend/db"
	technologyhandler "employability-backend/lib/technology"
	"employability-backend/lib/utils/apperr"
	"employability-backend/models"
	vacancyapimodels "employability-backend/models/api/vacancy"
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
	technologyhandler.NewHandler()
	NewHandler()
}

func addApplication(t *testing.T, vacancyID, email string) {
	user := dbmodels.User{
		Name:     "Кандидат",
		Email:    email,
		Password: "hash",
		Role:     models.UserRoleCoder,
	}
	require.NoError(t, db.DB.Create(&user).Error)
	rec := dbmodels.Application{
		UserID:    user.ID,
		VacancyID: vacancyID,
	}
	require.NoError(t, db.DB.Create(&rec).Error)
}

func TestCreate(t *testing.T) {
	t.Run(`валидация максимума откликов`, func(t *testing.T) {
		setupTest(t)
		_, err := Instance.Create(vacancyapimodels.VacancyData{
			Title:         "Go разработчик",
			Company:       "Рога и Копыта",
			MaxApplicants: 0,
		})
		require.True(t, apperr.IsInvalidState(err))
	})

	t.Run(`новая вакансия активна, формат по умолчанию удаленка`, func(t *testing.T) {
		setupTest(t)
		item, err := Instance.Create(vacancyapimodels.VacancyData{
			Title:         "Go разработчик",
			Company:       "Рога и Копыта",
			MaxApplicants: 3,
			Technologies:  []string{"Go", " postgresql ", "GO"},
		})
		require.NoError(t, err)
		require.True(t, item.IsActive)
		require.Equal(t, models.ModalityRemote, item.Modality)
		// технологии нормализуются к нижнему регистру без дублей
		require.ElementsMatch(t, []string{"go", "postgresql"}, item.Technologies)
		require.Equal(t, 3, item.AvailableSlots)
		require.True(t, item.HasAvailableSlots)
	})
}

func TestAvailability(t *testing.T) {
	t.Run(`заполнение слотов пересчитывается на каждом чтении`, func(t *testing.T) {
		setupTest(t)
		item, err := Instance.Create(vacancyapimodels.VacancyData{
			Title:         "Go разработчик",
			Company:       "Рога и Копыта",
			MaxApplicants: 2,
		})
		require.NoError(t, err)

		addApplication(t, item.ID, "a@example.com")
		view, err := Instance.GetByID(item.ID)
		require.NoError(t, err)
		require.Equal(t, 1, view.CurrentApplicants)
		require.Equal(t, 1, view.AvailableSlots)
		require.True(t, view.HasAvailableSlots)

		addApplication(t, item.ID, "b@example.com")
		view, err = Instance.GetByID(item.ID)
		require.NoError(t, err)
		require.Equal(t, 2, view.CurrentApplicants)
		require.Equal(t, 0, view.AvailableSlots)
		require.False(t, view.HasAvailableSlots)
		require.Len(t, view.Applicants, 2)
	})

	t.Run(`слоты могут уходить в минус при снижении максимума`, func(t *testing.T) {
		setupTest(t)
		item, err := Instance.Create(vacancyapimodels.VacancyData{
			Title:         "Go разработчик",
			Company:       "Рога и Копыта",
			MaxApplicants: 2,
		})
		require.NoError(t, err)
		addApplication(t, item.ID, "a@example.com")
		addApplication(t, item.ID, "b@example.com")

		view, err := Instance.Update(item.ID, vacancyapimodels.VacancyData{MaxApplicants: 1})
		require.NoError(t, err)
		require.Equal(t, -1, view.AvailableSlots)
		require.False(t, view.HasAvailableSlots)
	})

	t.Run(`тихий предикат против NotFound на карточке`, func(t *testing.T) {
		setupTest(t)
		hasSlots, err := Instance.HasAvailableSlots("missing-id")
		require.NoError(t, err)
		require.False(t, hasSlots)

		_, err = Instance.GetByID("missing-id")
		require.True(t, apperr.IsNotFound(err))
	})
}

func TestUpdate(t *testing.T) {
	t.Run(`частичное обновление не трогает незаданные поля`, func(t *testing.T) {
		setupTest(t)
		item, err := Instance.Create(vacancyapimodels.VacancyData{
			Title:         "Go разработчик",
			Company:       "Рога и Копыта",
			Location:      "Москва",
			MaxApplicants: 3,
		})
		require.NoError(t, err)

		view, err := Instance.Update(item.ID, vacancyapimodels.VacancyData{Title: "Senior Go разработчик"})
		require.NoError(t, err)
		require.Equal(t, "Senior Go разработчик", view.Title)
		require.Equal(t, "Рога и Копыта", view.Company)
		require.Equal(t, "Москва", view.Location)
	})

	t.Run(`технологии замещаются целиком`, func(t *testing.T) {
		setupTest(t)
		item, err := Instance.Create(vacancyapimodels.VacancyData{
			Title:         "Go разработчик",
			Company:       "Рога и Копыта",
			MaxApplicants: 3,
			Technologies:  []string{"go", "postgresql"},
		})
		require.NoError(t, err)

		view, err := Instance.Update(item.ID, vacancyapimodels.VacancyData{Technologies: []string{"kotlin"}})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"kotlin"}, view.Technologies)
	})

	t.Run(`обновление несуществующей вакансии - NotFound`, func(t *testing.T) {
		setupTest(t)
		_, err := Instance.Update("missing-id", vacancyapimodels.VacancyData{Title: "x"})
		require.True(t, apperr.IsNotFound(err))
	})
}

func TestToggleActive(t *testing.T) {
	t.Run(`повторное переключение возвращает вакансию в строй`, func(t *testing.T) {
		setupTest(t)
		item, err := Instance.Create(vacancyapimodels.VacancyData{
			Title:         "Go разработчик",
			Company:       "Рога и Копыта",
			MaxApplicants: 3,
		})
		require.NoError(t, err)

		view, err := Instance.ToggleActive(item.ID)
		require.NoError(t, err)
		require.False(t, view.IsActive)

		view, err = Instance.ToggleActive(item.ID)
		require.NoError(t, err)
		require.True(t, view.IsActive)
	})
}

func TestList(t *testing.T) {
	t.Run(`неактивные вакансии скрыты без include_inactive`, func(t *testing.T) {
		setupTest(t)
		active, err := Instance.Create(vacancyapimodels.VacancyData{
			Title:         "Активная",
			Company:       "Рога и Копыта",
			MaxApplicants: 3,
		})
		require.NoError(t, err)
		hidden, err := Instance.Create(vacancyapimodels.VacancyData{
			Title:         "Скрытая",
			Company:       "Рога и Копыта",
			MaxApplicants: 3,
		})
		require.NoError(t, err)
		_, err = Instance.ToggleActive(hidden.ID)
		require.NoError(t, err)

		list, err := Instance.List(false)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, active.ID, list[0].ID)

		list, err = Instance.List(true)
		require.NoError(t, err)
		require.Len(t, list, 2)
	})
}
