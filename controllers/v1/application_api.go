package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"employability-backend/controllers"
	applicationhandler "employability-backend/lib/application"
	xlsexport "employability-backend/lib/export/xls"
	filestorage "employability-backend/lib/file-storage"
	"employability-backend/middleware"
	apimodels "employability-backend/models/api"
	applicationapimodels "employability-backend/models/api/application"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app fiber.Router) {
	controller := applicationApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("", middleware.CoderRequired(), controller.create)
		router.Get("my", controller.listMy)
		router.Get("", middleware.ManagerOrAdminRequired(), controller.listAll)
		router.Get("export-xls", middleware.ManagerOrAdminRequired(), controller.exportXls)
		router.Get("vacancy/:vacancy_id", middleware.ManagerOrAdminRequired(), controller.listByVacancy)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Delete("", controller.remove)
			idRoute.Post("resume", middleware.CoderRequired(), controller.uploadResume)
			idRoute.Get("resume", controller.downloadResume)
		})
	})
}

// @Summary Создание отклика
// @Tags Отклик
// @Description Отклик на вакансию от имени текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplicationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application [post]
func (c *applicationApiController) create(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	item, err := applicationhandler.Instance.Create(userID, payload.VacancyID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Удаление отклика
// @Tags Отклик
// @Description Отзыв собственного отклика
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id} [delete]
func (c *applicationApiController) remove(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = applicationhandler.Instance.Remove(id, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Мои отклики
// @Tags Отклик
// @Description Список откликов текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/my [get]
func (c *applicationApiController) listMy(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	list, err := applicationhandler.Instance.ListByUser(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка откликов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Все отклики
// @Tags Отклик
// @Description Список всех откликов, доступно менеджерам
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application [get]
func (c *applicationApiController) listAll(ctx *fiber.Ctx) error {
	list, err := applicationhandler.Instance.ListAll()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка откликов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Отклики по вакансии
// @Tags Отклик
// @Description Список откликов по вакансии, доступно менеджерам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   vacancy_id			path    string	true	"vacancy ID"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/vacancy/{vacancy_id} [get]
func (c *applicationApiController) listByVacancy(ctx *fiber.Ctx) error {
	vacancyID := ctx.Params("vacancy_id")
	if vacancyID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор вакансии"))
	}
	list, err := applicationhandler.Instance.ListByVacancy(vacancyID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка откликов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Выгрузка в XLSX
// @Tags Отклик
// @Description Реестр всех откликов в xlsx, доступно менеджерам
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/export-xls [get]
func (c *applicationApiController) exportXls(ctx *fiber.Ctx) error {
	list, err := applicationhandler.Instance.ListAllRecs()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка откликов")
	}
	data, err := xlsexport.Instance.ExportApplicationList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки откликов в xlsx")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="applications.xlsx"`)
	return ctx.SendStream(data)
}

// @Summary Загрузка резюме
// @Tags Отклик
// @Description Загрузка файла резюме к собственному отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Param   file				formData	file	true	"файл резюме"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/resume [post]
func (c *applicationApiController) uploadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить файл из запроса"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл из запроса"))
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл из запроса"))
	}
	userID := middleware.GetUserID(ctx)
	err = filestorage.Instance.UploadResume(ctx.Context(), userID, id,
		fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType), body)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение резюме
// @Tags Отклик
// @Description Скачивание резюме, доступно владельцу отклика и менеджерам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/resume [get]
func (c *applicationApiController) downloadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	rec, body, err := filestorage.Instance.GetResume(ctx.Context(), userID, role, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения резюме")
	}
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.FileName+`"`)
	return ctx.Send(body)
}
