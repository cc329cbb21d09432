package connectionhub

import (
	"sync"

	"github.com/gofiber/contrib/websocket"

	"employability-backend/models"
	wsmodels "employability-backend/models/ws"
)

type Provider interface {
	AddClient(userID string, role models.UserRole, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	// BroadcastToStaff рассылает событие всем подключенным менеджерам и администраторам
	BroadcastToStaff(msg wsmodels.ServerMessage)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[userID]
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	delete(i.clients, userID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(userID string, role models.UserRole, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
		close(oldSess.sendCh)
	}
	i.clients[userID] = newSession(role, conn)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[msg.ToUserID]
	if ok {
		sess.sendCh <- msg
	}
}

func (i *impl) BroadcastToStaff(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	for userID, sess := range i.clients {
		if !sess.role.CanManageVacancies() {
			continue
		}
		msg.ToUserID = userID
		// медленный клиент не должен задерживать рассылку остальным
		select {
		case sess.sendCh <- msg:
		default:
		}
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}
