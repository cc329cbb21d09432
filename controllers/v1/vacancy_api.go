package apiv1

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"employability-backend/controllers"
	pdfexport "employability-backend/lib/export/pdf"
	gpthandler "employability-backend/lib/gpt"
	vacancyhandler "employability-backend/lib/vacancy"
	"employability-backend/middleware"
	apimodels "employability-backend/models/api"
	vacancyapimodels "employability-backend/models/api/vacancy"
)

type vacancyApiController struct {
	controllers.BaseAPIController
}

func InitVacancyApiRouters(app fiber.Router) {
	controller := vacancyApiController{}
	app.Route("vacancy", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Get("", controller.list)
		router.Post("", middleware.ManagerOrAdminRequired(), controller.create)
		router.Post("gen-description", middleware.ManagerOrAdminRequired(), controller.genDescription)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", middleware.ManagerOrAdminRequired(), controller.update)
			idRoute.Put("toggle-active", middleware.ManagerOrAdminRequired(), controller.toggleActive)
			idRoute.Get("export-pdf", middleware.ManagerOrAdminRequired(), controller.exportPdf)
		})
	})
}

// @Summary Создание
// @Tags Вакансия
// @Description Создание вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy [post]
func (c *vacancyApiController) create(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(false); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := vacancyhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Список
// @Tags Вакансия
// @Description Список вакансий с заполненностью, include_inactive доступен менеджерам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   include_inactive	query		bool	false	"включить неактивные вакансии"
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.VacancyView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy [get]
func (c *vacancyApiController) list(ctx *fiber.Ctx) error {
	includeInactive := ctx.QueryBool("include_inactive") &&
		middleware.GetUserRole(ctx).CanManageVacancies()
	list, err := vacancyhandler.Instance.List(includeInactive)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение
// @Tags Вакансия
// @Description Карточка вакансии с заполненностью и откликами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id} [get]
func (c *vacancyApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := vacancyhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Обновление
// @Tags Вакансия
// @Description Частичное обновление вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id} [put]
func (c *vacancyApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload vacancyapimodels.VacancyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(true); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := vacancyhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Смена активности
// @Tags Вакансия
// @Description Активация/деактивация вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/toggle-active [put]
func (c *vacancyApiController) toggleActive(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := vacancyhandler.Instance.ToggleActive(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены активности вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Выгрузка в PDF
// @Tags Вакансия
// @Description Карточка вакансии с кандидатами в PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/export-pdf [get]
func (c *vacancyApiController) exportPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := vacancyhandler.Instance.GetRecByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	pdfFile, err := pdfexport.GenerateVacancySummary(*rec)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки вакансии в pdf")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="vacancy.pdf"`)
	return ctx.SendStream(bytes.NewReader(pdfFile))
}

// @Summary Генерация описания
// @Tags Вакансия
// @Description Генерация описания вакансии по вводным данным через YandexGPT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.GenDescriptionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.GenDescriptionResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/gen-description [post]
func (c *vacancyApiController) genDescription(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.GenDescriptionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := gpthandler.Instance.GenerateVacancyDescription(ctx.Context(), payload.Brief)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка генерации описания вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
