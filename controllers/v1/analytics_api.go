package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"employability-backend/controllers"
	"employability-backend/lib/analytics"
	"employability-backend/middleware"
	apimodels "employability-backend/models/api"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app fiber.Router) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.ManagerOrAdminRequired())

		router.Get("overview", controller.overview)
		router.Get("overview/export-xls", controller.overviewExportXls)
	})
}

// @Summary Сводка
// @Tags Аналитика
// @Description Сводка заполненности вакансий откликами
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.OverviewData}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/overview [get]
func (c *analyticsApiController) overview(ctx *fiber.Ctx) error {
	data, err := analytics.Instance.Overview()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сводки по вакансиям")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Выгрузка сводки в XLSX
// @Tags Аналитика
// @Description Сводка заполненности вакансий в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/overview/export-xls [get]
func (c *analyticsApiController) overviewExportXls(ctx *fiber.Ctx) error {
	data, err := analytics.Instance.OverviewExportToXls()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки сводки в xlsx")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="overview.xlsx"`)
	return ctx.SendStream(data)
}
