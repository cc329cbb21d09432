package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"employability-backend/controllers"
	technologyhandler "employability-backend/lib/technology"
	"employability-backend/middleware"
	apimodels "employability-backend/models/api"
)

type technologyApiController struct {
	controllers.BaseAPIController
}

func InitTechnologyApiRouters(app fiber.Router) {
	controller := technologyApiController{}
	app.Route("technology", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
	})
}

// @Summary Список
// @Tags Технология
// @Description Справочник технологий
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]technologyapimodels.TechnologyView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/technology [get]
func (c *technologyApiController) list(ctx *fiber.Ctx) error {
	list, err := technologyhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка технологий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
