package wspush

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"employability-backend/lib/events"
	connectionhub "employability-backend/lib/ws/hub/connection-hub"
	"employability-backend/models"
	wsmodels "employability-backend/models/ws"
)

// Subscribe подключает ws-пуши менеджерам к шине событий по откликам
func Subscribe() error {
	err := events.Bus.Subscribe(models.ApplicationCreatedTopic, onCreated)
	if err != nil {
		return errors.Wrap(err, "ошибка подписки на событие создания отклика")
	}
	err = events.Bus.Subscribe(models.ApplicationRemovedTopic, onRemoved)
	if err != nil {
		return errors.Wrap(err, "ошибка подписки на событие удаления отклика")
	}
	return nil
}

func onCreated(event models.ApplicationEvent) {
	broadcast(event, wsmodels.CodeApplicationCreated,
		fmt.Sprintf("Новый отклик на вакансию «%s» от %s", event.VacancyTitle, event.UserName))
}

func onRemoved(event models.ApplicationEvent) {
	broadcast(event, wsmodels.CodeApplicationRemoved,
		fmt.Sprintf("Отклик на вакансию «%s» отозван (%s)", event.VacancyTitle, event.UserName))
}

func broadcast(event models.ApplicationEvent, code, msg string) {
	connectionhub.Instance.BroadcastToStaff(wsmodels.ServerMessage{
		Time:          time.Now().Format("02.01.2006 15:04:05"),
		Code:          code,
		Msg:           msg,
		VacancyID:     event.VacancyID,
		ApplicationID: event.ApplicationID,
	})
}
