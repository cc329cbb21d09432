package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"employability-backend/config"
	apimodels "employability-backend/models/api"
)

// LoginRateLimit ограничивает частоту запросов на вход и регистрацию по ip адресу.
func LoginRateLimit() fiber.Handler {
	limiters := map[string]*rate.Limiter{}
	mu := sync.Mutex{}

	perMin := config.Conf.Auth.LoginRatePerMin
	if perMin <= 0 {
		perMin = 10
	}

	getLimiter := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(perMin)/60), perMin)
			limiters[ip] = limiter
		}
		return limiter
	}

	return func(ctx *fiber.Ctx) error {
		if !getLimiter(ctx.IP()).Allow() {
			return ctx.Status(fiber.StatusTooManyRequests).
				JSON(apimodels.NewError("слишком много запросов, попробуйте позже"))
		}
		return ctx.Next()
	}
}
