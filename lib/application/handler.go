package applicationhandler

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"employability-backend/db"
	applicationstore "employability-backend/lib/application/store"
	"employability-backend/lib/events"
	"employability-backend/lib/utils/apperr"
	vacancyhandler "employability-backend/lib/vacancy"
	vacancystore "employability-backend/lib/vacancy/store"
	"employability-backend/models"
	applicationapimodels "employability-backend/models/api/application"
	dbmodels "employability-backend/models/db"
)

// maxActiveApplications - лимит одновременных откликов на активные вакансии.
// Отклики на закрытые вакансии квоту не занимают
const maxActiveApplications = 3

type Provider interface {
	Create(userID, vacancyID string) (item applicationapimodels.ApplicationView, err error)
	Remove(id, userID string) error
	ListAll() (list []applicationapimodels.ApplicationView, err error)
	// ListAllRecs отдает записи с кандидатом и вакансией, используется выгрузкой в xlsx
	ListAllRecs() (list []dbmodels.Application, err error)
	ListByUser(userID string) (list []applicationapimodels.ApplicationView, err error)
	ListByVacancy(vacancyID string) (list []applicationapimodels.ApplicationView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           applicationstore.NewInstance(db.DB),
		vacancyProvider: vacancyhandler.Instance,
	}
}

type impl struct {
	store           applicationstore.Provider
	vacancyProvider vacancyhandler.Provider
}

// Create - пайплайн проверок перед созданием отклика.
// Порядок проверок - часть контракта: повторный отклик обязан отвечать
// "уже откликался", а не "нет слотов", даже если вакансия заполнена.
func (i impl) Create(userID, vacancyID string) (applicationapimodels.ApplicationView, error) {
	logger := i.getLogger(userID, vacancyID)

	// Проверка 1: вакансия существует
	vacancy, err := i.vacancyProvider.GetRecByID(vacancyID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "ошибка поиска вакансии")
	}
	if vacancy == nil {
		return applicationapimodels.ApplicationView{}, apperr.NotFound("вакансия не найдена")
	}

	// Проверка 2: вакансия активна
	if !vacancy.IsActive {
		return applicationapimodels.ApplicationView{}, apperr.InvalidState("нельзя откликнуться на неактивную вакансию")
	}

	recID := ""
	// Проверки 3-5 и вставка выполняются одной транзакцией,
	// уникальный индекс (user_id, vacancy_id) - страховка от параллельного дубля
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := applicationstore.NewInstance(tx)

		// Проверка 3: повторный отклик на ту же вакансию
		existing, err := store.FindByUserAndVacancy(userID, vacancyID)
		if err != nil {
			return errors.Wrap(err, "ошибка поиска отклика")
		}
		if existing != nil {
			return apperr.Conflict("вы уже откликались на эту вакансию")
		}

		// Проверка 4: у вакансии есть свободные слоты
		txVacancy, err := vacancystore.NewInstance(tx).GetByID(vacancyID)
		if err != nil {
			return errors.Wrap(err, "ошибка поиска вакансии")
		}
		if txVacancy == nil || !txVacancy.HasAvailableSlots() {
			return apperr.InvalidState("у вакансии не осталось свободных слотов")
		}

		// Проверка 5: квота откликов пользователя на активные вакансии
		activeCount, err := store.CountActiveByUser(userID)
		if err != nil {
			return errors.Wrap(err, "ошибка подсчета активных откликов")
		}
		if activeCount >= maxActiveApplications {
			return apperr.InvalidState("нельзя иметь более 3 откликов на активные вакансии, отмените прежний отклик или дождитесь закрытия вакансии")
		}

		recID, err = store.Create(dbmodels.Application{
			UserID:    userID,
			VacancyID: vacancyID,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return apperr.Conflict("вы уже откликались на эту вакансию")
			}
			return errors.Wrap(err, "ошибка создания отклика")
		}
		return nil
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}

	full, err := i.store.GetByIDFull(recID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "ошибка получения созданного отклика")
	}
	if full == nil {
		return applicationapimodels.ApplicationView{}, apperr.NotFound("отклик не найден")
	}
	logger.
		WithField("rec_id", recID).
		Info("Создан отклик")
	i.publishEvent(models.ApplicationCreatedTopic, *full)
	return applicationapimodels.ApplicationConvert(*full), nil
}

// Remove - снятие отклика владельцем; повторное удаление отвечает NotFound
func (i impl) Remove(id, userID string) error {
	rec, err := i.store.GetByIDFull(id)
	if err != nil {
		return errors.Wrap(err, "ошибка поиска отклика")
	}
	if rec == nil {
		return apperr.NotFound("отклик не найден")
	}
	if rec.UserID != userID {
		return apperr.Forbidden("нельзя удалить чужой отклик")
	}
	deleted, err := i.store.Delete(id)
	if err != nil {
		return errors.Wrap(err, "ошибка удаления отклика")
	}
	if !deleted {
		return apperr.NotFound("отклик не найден")
	}
	i.getLogger(userID, rec.VacancyID).
		WithField("rec_id", id).
		Info("Удален отклик")
	i.publishEvent(models.ApplicationRemovedTopic, *rec)
	return nil
}

func (i impl) ListAll() ([]applicationapimodels.ApplicationView, error) {
	list, err := i.store.ListAll()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка откликов")
	}
	return convertList(list), nil
}

func (i impl) ListAllRecs() ([]dbmodels.Application, error) {
	list, err := i.store.ListAll()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка откликов")
	}
	return list, nil
}

func (i impl) ListByUser(userID string) ([]applicationapimodels.ApplicationView, error) {
	list, err := i.store.ListByUser(userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения откликов пользователя")
	}
	return convertList(list), nil
}

func (i impl) ListByVacancy(vacancyID string) ([]applicationapimodels.ApplicationView, error) {
	list, err := i.store.ListByVacancy(vacancyID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения откликов по вакансии")
	}
	return convertList(list), nil
}

func (i impl) publishEvent(topic string, rec dbmodels.Application) {
	evt := models.ApplicationEvent{
		ApplicationID: rec.ID,
		UserID:        rec.UserID,
		VacancyID:     rec.VacancyID,
	}
	if rec.User != nil {
		evt.UserName = rec.User.Name
		evt.UserEmail = rec.User.Email
	}
	if rec.Vacancy != nil {
		evt.VacancyTitle = rec.Vacancy.Title
		evt.Company = rec.Vacancy.Company
	}
	events.Publish(topic, evt)
}

func (i impl) getLogger(userID, vacancyID string) *log.Entry {
	return log.
		WithField("user_id", userID).
		WithField("vacancy_id", vacancyID)
}

func convertList(list []dbmodels.Application) []applicationapimodels.ApplicationView {
	return lo.Map(list, func(rec dbmodels.Application, _ int) applicationapimodels.ApplicationView {
		return applicationapimodels.ApplicationConvert(rec)
	})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "SQLSTATE 23505") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
