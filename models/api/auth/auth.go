package authapimodels

import (
	"strings"

	"github.com/pkg/errors"

	userapimodels "employability-backend/models/api/user"
)

type RegisterRequest struct {
	Name     string `json:"name"`     // имя пользователя
	Email    string `json:"email"`    // почта, уникальная
	Password string `json:"password"` // пароль
}

func (r RegisterRequest) Validate() error {
	if r.Name == "" {
		return errors.New("не указано имя пользователя")
	}
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return errors.New("не указана корректная почта")
	}
	if len(r.Password) < 6 {
		return errors.New("пароль должен быть не короче 6 символов")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return errors.New("не указана почта")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type JWTResponse struct {
	Token        string                 `json:"token"`
	RefreshToken string                 `json:"refresh_token,omitempty"`
	User         userapimodels.UserView `json:"user"`
}

type JWTRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r JWTRefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return errors.New("не указан refresh-токен")
	}
	return nil
}
