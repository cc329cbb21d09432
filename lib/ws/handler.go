package ws

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	wsclient "employability-backend/lib/ws/client"
	connectionhub "employability-backend/lib/ws/hub/connection-hub"
	"employability-backend/middleware"
	"employability-backend/models"
)

func InitWs(app fiber.Router) {
	app.Use("", func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", middleware.GetUserID(ctx))
		ctx.Locals("userRole", middleware.GetUserRole(ctx))
		return ctx.Next()
	})
	app.Get("/", websocket.New(pushHandler))
}

// @Summary Пуши по откликам
// @Tags Websocket
// @Description Серверные пуши о новых и отозванных откликах
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 403
// @Failure 500
// @router /ws [get]
func pushHandler(c *websocket.Conn) {
	userID := c.Locals("userID").(string)
	role := c.Locals("userRole").(models.UserRole)
	client := wsclient.NewClient(userID, c)
	connectionhub.Instance.AddClient(userID, role, c)
	defer func() {
		connectionhub.Instance.DeleteClient(userID)
	}()
	client.Dispatch()
}
