package models

// Топики внутренней шины событий
const (
	ApplicationCreatedTopic = "application:created"
	ApplicationRemovedTopic = "application:removed"
)

// ApplicationEvent - событие по отклику для подписчиков (почта, ws-пуши)
type ApplicationEvent struct {
	ApplicationID string
	UserID        string
	UserName      string
	UserEmail     string
	VacancyID     string
	VacancyTitle  string
	Company       string
}
