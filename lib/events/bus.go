package events

import (
	"github.com/asaskevich/EventBus"
)

// Bus - внутренняя шина доменных событий (почта, ws-пуши подписываются на нее)
var Bus EventBus.Bus

func Init() {
	Bus = EventBus.New()
}

// Publish не делает ничего до инициализации шины - издатели не зависят от подписчиков
func Publish(topic string, args ...interface{}) {
	if Bus == nil {
		return
	}
	Bus.Publish(topic, args...)
}
