package applicationhandler

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"employability-backend/db"
	"employability-backend/lib/events"
	technologyhandler "employability-backend/lib/technology"
	"employability-backend/lib/utils/apperr"
	vacancyhandler "employability-backend/lib/vacancy"
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
	events.Init()
	technologyhandler.NewHandler()
	vacancyhandler.NewHandler()
	NewHandler()
}

func createTestUser(t *testing.T, name, email string) string {
	rec := dbmodels.User{
		Name:     name,
		Email:    email,
		Password: "hash",
		Role:     models.UserRoleCoder,
	}
	require.NoError(t, db.DB.Create(&rec).Error)
	return rec.ID
}

func createTestVacancy(t *testing.T, title string, maxApplicants int, isActive bool) string {
	rec := dbmodels.Vacancy{
		Title:         title,
		Company:       "Рога и Копыта",
		MaxApplicants: maxApplicants,
		IsActive:      isActive,
	}
	require.NoError(t, db.DB.Create(&rec).Error)
	return rec.ID
}

func TestCreatePipeline(t *testing.T) {
	t.Run(`отклик создается и возвращается с вакансией и кандидатом`, func(t *testing.T) {
		setupTest(t)
		userID := createTestUser(t, "Иван", "ivan@example.com")
		vacancyID := createTestVacancy(t, "Go разработчик", 3, true)

		item, err := Instance.Create(userID, vacancyID)
		require.NoError(t, err)
		require.NotEmpty(t, item.ID)
		require.Equal(t, userID, item.UserID)
		require.Equal(t, vacancyID, item.VacancyID)
		require.NotNil(t, item.User)
		require.NotNil(t, item.Vacancy)
	})

	t.Run(`отклик на несуществующую вакансию - NotFound`, func(t *testing.T) {
		setupTest(t)
		userID := createTestUser(t, "Иван", "ivan@example.com")

		_, err := Instance.Create(userID, "missing-id")
		require.True(t, apperr.IsNotFound(err))
	})

	t.Run(`отклик на неактивную вакансию - InvalidState даже при наличии слотов`, func(t *testing.T) {
		setupTest(t)
		userID := createTestUser(t, "Иван", "ivan@example.com")
		vacancyID := createTestVacancy(t, "Go разработчик", 10, false)

		_, err := Instance.Create(userID, vacancyID)
		require.True(t, apperr.IsInvalidState(err))
	})

	t.Run(`повторный отклик - Conflict`, func(t *testing.T) {
		setupTest(t)
		userID := createTestUser(t, "Иван", "ivan@example.com")
		vacancyID := createTestVacancy(t, "Go разработчик", 3, true)

		_, err := Instance.Create(userID, vacancyID)
		require.NoError(t, err)
		_, err = Instance.Create(userID, vacancyID)
		require.True(t, apperr.IsConflict(err))
	})

	t.Run(`дубль на заполненной вакансии отвечает Conflict, а не "нет слотов"`, func(t *testing.T) {
		setupTest(t)
		userID := createTestUser(t, "Иван", "ivan@example.com")
		vacancyID := createTestVacancy(t, "Go разработчик", 1, true)

		_, err := Instance.Create(userID, vacancyID)
		require.NoError(t, err)
		// вакансия заполнена этим же пользователем, проверка дубля должна сработать первой
		_, err = Instance.Create(userID, vacancyID)
		require.True(t, apperr.IsConflict(err))
	})

	t.Run(`нет свободных слотов - InvalidState`, func(t *testing.T) {
		setupTest(t)
		firstID := createTestUser(t, "Иван", "ivan@example.com")
		secondID := createTestUser(t, "Петр", "petr@example.com")
		vacancyID := createTestVacancy(t, "Go разработчик", 1, true)

		_, err := Instance.Create(firstID, vacancyID)
		require.NoError(t, err)
		_, err = Instance.Create(secondID, vacancyID)
		require.True(t, apperr.IsInvalidState(err))
	})

	t.Run(`квота активных откликов и её освобождение при закрытии вакансии`, func(t *testing.T) {
		setupTest(t)
		userID := createTestUser(t, "Иван", "ivan@example.com")
		vacancies := make([]string, 0, 4)
		for n := 0; n < 4; n++ {
			vacancies = append(vacancies, createTestVacancy(t, fmt.Sprintf("Вакансия %d", n), 5, true))
		}

		for n := 0; n < maxActiveApplications; n++ {
			_, err := Instance.Create(userID, vacancies[n])
			require.NoError(t, err)
		}
		_, err := Instance.Create(userID, vacancies[3])
		require.True(t, apperr.IsInvalidState(err))

		// закрытая вакансия перестает занимать квоту
		_, err = vacancyhandler.Instance.ToggleActive(vacancies[0])
		require.NoError(t, err)
		_, err = Instance.Create(userID, vacancies[3])
		require.NoError(t, err)
	})
}

func TestRemove(t *testing.T) {
	t.Run(`владелец отзывает отклик, слот освобождается`, func(t *testing.T) {
		setupTest(t)
		userID := createTestUser(t, "Иван", "ivan@example.com")
		vacancyID := createTestVacancy(t, "Go разработчик", 1, true)

		item, err := Instance.Create(userID, vacancyID)
		require.NoError(t, err)

		hasSlots, err := vacancyhandler.Instance.HasAvailableSlots(vacancyID)
		require.NoError(t, err)
		require.False(t, hasSlots)

		require.NoError(t, Instance.Remove(item.ID, userID))

		hasSlots, err = vacancyhandler.Instance.HasAvailableSlots(vacancyID)
		require.NoError(t, err)
		require.True(t, hasSlots)

		// после отзыва можно откликнуться снова
		_, err = Instance.Create(userID, vacancyID)
		require.NoError(t, err)
	})

	t.Run(`чужой отклик удалить нельзя - Forbidden`, func(t *testing.T) {
		setupTest(t)
		ownerID := createTestUser(t, "Иван", "ivan@example.com")
		strangerID := createTestUser(t, "Петр", "petr@example.com")
		vacancyID := createTestVacancy(t, "Go разработчик", 3, true)

		item, err := Instance.Create(ownerID, vacancyID)
		require.NoError(t, err)

		err = Instance.Remove(item.ID, strangerID)
		require.True(t, apperr.IsForbidden(err))
	})

	t.Run(`повторное удаление - NotFound`, func(t *testing.T) {
		setupTest(t)
		userID := createTestUser(t, "Иван", "ivan@example.com")
		vacancyID := createTestVacancy(t, "Go разработчик", 3, true)

		item, err := Instance.Create(userID, vacancyID)
		require.NoError(t, err)
		require.NoError(t, Instance.Remove(item.ID, userID))

		err = Instance.Remove(item.ID, userID)
		require.True(t, apperr.IsNotFound(err))
	})
}

func TestEvents(t *testing.T) {
	t.Run(`создание и отзыв отклика публикуют события`, func(t *testing.T) {
		setupTest(t)
		created := make([]models.ApplicationEvent, 0, 1)
		removed := make([]models.ApplicationEvent, 0, 1)
		require.NoError(t, events.Bus.Subscribe(models.ApplicationCreatedTopic, func(evt models.ApplicationEvent) {
			created = append(created, evt)
		}))
		require.NoError(t, events.Bus.Subscribe(models.ApplicationRemovedTopic, func(evt models.ApplicationEvent) {
			removed = append(removed, evt)
		}))

		userID := createTestUser(t, "Иван", "ivan@example.com")
		vacancyID := createTestVacancy(t, "Go разработчик", 3, true)

		item, err := Instance.Create(userID, vacancyID)
		require.NoError(t, err)
		require.NoError(t, Instance.Remove(item.ID, userID))

		require.Len(t, created, 1)
		require.Equal(t, item.ID, created[0].ApplicationID)
		require.Equal(t, "ivan@example.com", created[0].UserEmail)
		require.Len(t, removed, 1)
		require.Equal(t, item.ID, removed[0].ApplicationID)
	})
}

func TestListing(t *testing.T) {
	t.Run(`списки откликов по пользователю и вакансии`, func(t *testing.T) {
		setupTest(t)
		firstID := createTestUser(t, "Иван", "ivan@example.com")
		secondID := createTestUser(t, "Петр", "petr@example.com")
		vacancyID := createTestVacancy(t, "Go разработчик", 5, true)
		otherVacancyID := createTestVacancy(t, "Аналитик", 5, true)

		_, err := Instance.Create(firstID, vacancyID)
		require.NoError(t, err)
		_, err = Instance.Create(firstID, otherVacancyID)
		require.NoError(t, err)
		_, err = Instance.Create(secondID, vacancyID)
		require.NoError(t, err)

		all, err := Instance.ListAll()
		require.NoError(t, err)
		require.Len(t, all, 3)

		byUser, err := Instance.ListByUser(firstID)
		require.NoError(t, err)
		require.Len(t, byUser, 2)

		byVacancy, err := Instance.ListByVacancy(vacancyID)
		require.NoError(t, err)
		require.Len(t, byVacancy, 2)
	})
}
