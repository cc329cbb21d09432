package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"employability-backend/controllers"
	authhandler "employability-backend/lib/auth"
	"employability-backend/middleware"
	apimodels "employability-backend/models/api"
	authapimodels "employability-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app fiber.Router) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("register", middleware.LoginRateLimit(), controller.register)
		router.Post("login", middleware.LoginRateLimit(), controller.login)
		router.Post("refresh-token", controller.refreshToken)
		router.Use(middleware.AuthorizationRequired()).Get("me", controller.me)
	})
}

// @Summary Регистрация пользователя
// @Tags Аутентификация пользователей
// @Description Регистрация пользователя, роль всегда кодер
// @Param	body				body		authapimodels.RegisterRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register [post]
func (c *authApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Register(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Аутентификация пользователя
// @Tags Аутентификация пользователей
// @Description Аутентификация пользователя
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получить информацию о текущем пользователе
// @Tags Аутентификация пользователей
// @Description Получить информацию о текущем пользователе
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.Me(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновить JWT
// @Tags Аутентификация пользователей
// @Description Обновить JWT
// @Param	body				body		authapimodels.JWTRefreshRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh-token [post]
func (c *authApiController) refreshToken(ctx *fiber.Ctx) error {
	var payload authapimodels.JWTRefreshRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.RefreshToken(payload.RefreshToken)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("недействительный токен"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
