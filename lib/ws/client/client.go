package wsclient

import (
	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

func NewClient(userID string, c *websocket.Conn) *WsClient {
	return &WsClient{
		conn:   c,
		userID: userID,
	}
}

type WsClient struct {
	conn   *websocket.Conn
	userID string
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

// Dispatch читает входящие сообщения до закрытия соединения.
// Клиентские сообщения не обрабатываются, канал используется только для серверных пушей.
func (c *WsClient) Dispatch() {
	for {
		if c.conn == nil {
			return
		}
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				log.WithError(err).WithField("user_id", c.userID).Error("ошибка получения сообщения")
			}
			return
		}
	}
}
