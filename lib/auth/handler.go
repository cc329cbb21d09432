package authhandler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"employability-backend/db"
	"employability-backend/lib/utils/apperr"
	authhelpers "employability-backend/lib/utils/auth-helpers"
	authutils "employability-backend/lib/utils/auth-utils"
	userstore "employability-backend/lib/users/store"
	"employability-backend/models"
	authapimodels "employability-backend/models/api/auth"
	userapimodels "employability-backend/models/api/user"
	dbmodels "employability-backend/models/db"
)

type Provider interface {
	Register(data authapimodels.RegisterRequest) (response authapimodels.JWTResponse, err error)
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	Me(ctx *fiber.Ctx) (view userapimodels.UserView, err error)
	RefreshToken(refreshToken string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store userstore.Provider
}

// Register создает пользователя; роль всегда кодер,
// служебные роли добавляются только через преднастройку
func (i impl) Register(data authapimodels.RegisterRequest) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", data.Email)
	exist, err := i.store.ExistByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки почты")
		return authapimodels.JWTResponse{}, errors.Wrap(err, "ошибка проверки почты")
	}
	if exist {
		return authapimodels.JWTResponse{}, apperr.Conflict("почта уже зарегистрирована")
	}
	hash, err := authhelpers.HashPassword(data.Password)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	rec := dbmodels.User{
		Name:     data.Name,
		Email:    data.Email,
		Password: hash,
		Role:     models.UserRoleCoder,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания пользователя")
		return authapimodels.JWTResponse{}, errors.Wrap(err, "ошибка создания пользователя")
	}
	rec.ID = id
	logger.WithField("rec_id", id).Info("Зарегистрирован пользователь")
	return i.buildTokens(rec)
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пользователя по почте")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.JWTResponse{}, errors.New("неверная почта или пароль")
	}
	if !authhelpers.CheckPassword(user.Password, password) {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, errors.New("неверная почта или пароль")
	}
	return i.buildTokens(*user)
}

func (i impl) Me(ctx *fiber.Ctx) (userapimodels.UserView, error) {
	claims := authutils.GetClaims(ctx)
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return userapimodels.UserView{}, errors.New("нет данных пользователя в токене")
	}
	user, err := i.store.GetByID(sub)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if user == nil {
		return userapimodels.UserView{}, apperr.NotFound("пользователь не найден")
	}
	return userapimodels.UserConvert(*user), nil
}

func (i impl) RefreshToken(refreshToken string) (authapimodels.JWTResponse, error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "некорректный refresh-токен")
	}
	sub, _ := claims["sub"].(string)
	user, err := i.store.GetByID(sub)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, apperr.NotFound("пользователь не найден")
	}
	return i.buildTokens(*user)
}

func (i impl) buildTokens(user dbmodels.User) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(user.ID, user.Name, user.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "ошибка генерации JWT")
	}
	refresh, err := authutils.GetRefreshToken(user.ID, user.Name)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "ошибка генерации refresh-токена")
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refresh,
		User:         userapimodels.UserConvert(user),
	}, nil
}
