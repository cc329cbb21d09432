package notify

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"employability-backend/config"
	"employability-backend/lib/events"
	"employability-backend/lib/smtp"
	"employability-backend/models"
)

var Instance Provider

type Provider interface {
	ApplicationCreated(event models.ApplicationEvent)
	ApplicationRemoved(event models.ApplicationEvent)
}

// NewHandler подписывает почтовые уведомления на шину событий по откликам
func NewHandler() error {
	h := &impl{
		from: config.Conf.Smtp.EmailFrom,
	}
	Instance = h
	if err := events.Bus.Subscribe(models.ApplicationCreatedTopic, h.ApplicationCreated); err != nil {
		return errors.Wrap(err, "ошибка подписки на событие создания отклика")
	}
	if err := events.Bus.Subscribe(models.ApplicationRemovedTopic, h.ApplicationRemoved); err != nil {
		return errors.Wrap(err, "ошибка подписки на событие удаления отклика")
	}
	return nil
}

type impl struct {
	from string
}

// ApplicationCreated отправляет кандидату подтверждение отклика.
// Отправка не влияет на результат операции, ошибка только логируется.
func (i impl) ApplicationCreated(event models.ApplicationEvent) {
	subject := "Отклик на вакансию отправлен"
	message := fmt.Sprintf("Здравствуйте, %s!\r\nВаш отклик на вакансию «%s» (%s) принят.",
		event.UserName, event.VacancyTitle, event.Company)
	i.send(event, subject, message)
}

// ApplicationRemoved отправляет кандидату уведомление об отзыве отклика
func (i impl) ApplicationRemoved(event models.ApplicationEvent) {
	subject := "Отклик на вакансию отозван"
	message := fmt.Sprintf("Здравствуйте, %s!\r\nВаш отклик на вакансию «%s» (%s) отозван.",
		event.UserName, event.VacancyTitle, event.Company)
	i.send(event, subject, message)
}

func (i impl) send(event models.ApplicationEvent, subject, message string) {
	if event.UserEmail == "" {
		return
	}
	err := smtp.Instance.SendEMail(i.from, event.UserEmail, subject, message)
	if err != nil {
		log.
			WithError(err).
			WithField("application_id", event.ApplicationID).
			Error("не удалось отправить письмо по отклику")
	}
}
