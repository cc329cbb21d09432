package wsmodels

// Коды серверных событий
const (
	CodeApplicationCreated = "application_created"
	CodeApplicationRemoved = "application_removed"
)

type ServerMessage struct {
	ToUserID      string `json:"-"`
	Time          string `json:"time"`           // время события
	Code          string `json:"code"`           // код события
	Msg           string `json:"msg"`            // текст события
	VacancyID     string `json:"vacancy_id"`     // вакансия по событию
	ApplicationID string `json:"application_id"` // отклик по событию
}
