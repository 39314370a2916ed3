package v1

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production!
	},
}

type feedClient struct {
	conn   *websocket.Conn
	send   chan []byte
	userID uint
}

// CheckinHandler streams redemption events to connected dashboards so
// the attendee table updates without polling.
type CheckinHandler struct {
	uSvc         UserService
	clients      map[uint]*feedClient
	clientsMutex sync.RWMutex
	broadcast    chan []byte
	register     chan *feedClient
	unregister   chan *feedClient
}

func NewCheckinHandler(uSvc UserService) *CheckinHandler {
	return &CheckinHandler{
		uSvc:       uSvc,
		clients:    make(map[uint]*feedClient),
		broadcast:  make(chan []byte),
		register:   make(chan *feedClient),
		unregister: make(chan *feedClient),
	}
}

func (h *CheckinHandler) Run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMutex.Lock()
			h.clients[client.userID] = client
			h.clientsMutex.Unlock()
		case client := <-h.unregister:
			h.clientsMutex.Lock()
			if _, ok := h.clients[client.userID]; ok {
				delete(h.clients, client.userID)
				close(client.send)
			}
			h.clientsMutex.Unlock()
		case message := <-h.broadcast:
			h.clientsMutex.Lock()
			for _, client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client.userID)
				}
			}
			h.clientsMutex.Unlock()
		}
	}
}

// Publish fans a redemption out to every connected dashboard.
func (h *CheckinHandler) Publish(ev domain.CheckinEvent) {
	message, err := json.Marshal(ev)
	if err != nil {
		zap.L().Warn("failed to encode check-in event", zap.Error(err))
		return
	}

	h.broadcast <- message
}

// HandleFeed godoc
// @Summary Establish WebSocket connection for the check-in feed
// @Description Streams ticket redemption events to the dashboard in real time
// @Tags attendees
// @Produce json
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} response.Err
// @Failure 500 {object} response.Err
// @Router /checkin/feed [get]
// @Security BearerAuth
func (h *CheckinHandler) HandleFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	user, respErr := getUserFromContext(c, h.uSvc)
	if respErr != nil {
		conn.Close()
		return
	}

	client := &feedClient{
		conn:   conn,
		send:   make(chan []byte, 256),
		userID: user.ID,
	}
	h.register <- client

	go client.writePump()
	go client.readPump(h)
}

func (c *feedClient) writePump() {
	defer func() {
		c.conn.Close()
	}()
	for message := range c.send {
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)
		if err := w.Close(); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump drains the connection so pings and client closes are
// noticed. The feed is one-way; inbound payloads are discarded.
func (c *feedClient) readPump(h *CheckinHandler) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Warn("check-in feed read failed", zap.Error(err))
			}
			break
		}
	}
}
