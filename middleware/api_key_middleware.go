package middleware

import (
	"github.com/gofiber/fiber/v2"

	"employability-backend/config"
	apimodels "employability-backend/models/api"
)

const apiKeyHeader = "x-api-key"

// APIKeyRequired проверяет заголовок x-api-key на всех запросах к API.
// Если ключ в конфигурации не задан, проверка отключена.
func APIKeyRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if config.Conf.Auth.APIKey == "" {
			return ctx.Next()
		}
		if ctx.Get(apiKeyHeader) != config.Conf.Auth.APIKey {
			return ctx.Status(fiber.StatusUnauthorized).
				JSON(apimodels.NewError("неверный api ключ"))
		}
		return ctx.Next()
	}
}
