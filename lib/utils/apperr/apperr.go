package apperr

import (
	"github.com/pkg/errors"
)

// Kind - класс бизнес-ошибки, транспортный слой отображает его в HTTP-статус.
// Первая сработавшая проверка пайплайна определяет Kind ответа целиком.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidState
	KindConflict
	KindForbidden
)

type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Kind() Kind {
	return e.kind
}

func New(kind Kind, msg string) error {
	return &Error{kind: kind, msg: msg}
}

func NotFound(msg string) error {
	return New(KindNotFound, msg)
}

func InvalidState(msg string) error {
	return New(KindInvalidState, msg)
}

func Conflict(msg string) error {
	return New(KindConflict, msg)
}

func Forbidden(msg string) error {
	return New(KindForbidden, msg)
}

// KindOf возвращает класс ошибки с учетом оберток pkg/errors
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	appErr := &Error{}
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsInvalidState(err error) bool {
	return KindOf(err) == KindInvalidState
}

func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

func IsForbidden(err error) bool {
	return KindOf(err) == KindForbidden
}
