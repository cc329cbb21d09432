package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "employability-backend/lib/utils/auth-utils"
	"employability-backend/models"
	apimodels "employability-backend/models/api"
)

// GetUserID возвращает идентификатор пользователя из jwt токена
func GetUserID(ctx *fiber.Ctx) string {
	sub, _ := authutils.GetClaims(ctx)["sub"].(string)
	return sub
}

// GetUserRole возвращает роль пользователя из jwt токена
func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	role, _ := authutils.GetClaims(ctx)["role"].(string)
	return models.UserRole(role)
}

// ManagerOrAdminRequired пропускает только менеджеров и администраторов
func ManagerOrAdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !GetUserRole(ctx).CanManageVacancies() {
			return ctx.Status(fiber.StatusForbidden).
				JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}

// CoderRequired пропускает только пользователей с ролью кодера
func CoderRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if GetUserRole(ctx) != models.UserRoleCoder {
			return ctx.Status(fiber.StatusForbidden).
				JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
