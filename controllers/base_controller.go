package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"employability-backend/lib/utils/apperr"
	apimodels "employability-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("не указан идентификатор записи")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError переводит доменную ошибку в http статус, прочие ошибки отдаются как 500
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case apperr.KindInvalidState:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case apperr.KindConflict:
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	case apperr.KindForbidden:
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(hMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(hMsg))
}
