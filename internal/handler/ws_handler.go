package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"kanban-workspace-api/internal/database"
	"kanban-workspace-api/internal/middleware"
	"kanban-workspace-api/internal/notifier"
	"kanban-workspace-api/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// wsClient is one websocket subscriber of a board's event stream
type wsClient struct {
	conn    *websocket.Conn
	send    chan []byte
	boardID uuid.UUID
	userID  uuid.UUID
}

// wsHub tracks connected clients per board
type wsHub struct {
	clients   map[uuid.UUID]map[*wsClient]bool
	clientsMu sync.RWMutex
}

func (h *wsHub) add(client *wsClient) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	if h.clients[client.boardID] == nil {
		h.clients[client.boardID] = make(map[*wsClient]bool)
	}
	h.clients[client.boardID][client] = true
}

func (h *wsHub) remove(client *wsClient) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	if set, ok := h.clients[client.boardID]; ok {
		if set[client] {
			delete(set, client)
			close(client.send)
		}
		if len(set) == 0 {
			delete(h.clients, client.boardID)
		}
	}
}

// WSHandler streams board events to websocket subscribers. The stream is
// one-way: mutations go through the REST endpoints and fan out over redis.
type WSHandler struct {
	logger       *zap.Logger
	boardService service.BoardService
	jwtSecret    string
	hub          *wsHub
}

// NewWSHandler creates a new WSHandler
func NewWSHandler(logger *zap.Logger, boardService service.BoardService, jwtSecret string) *WSHandler {
	return &WSHandler{
		logger:       logger,
		boardService: boardService,
		jwtSecret:    jwtSecret,
		hub:          &wsHub{clients: make(map[uuid.UUID]map[*wsClient]bool)},
	}
}

// HandleBoardStream godoc
// @Summary      Subscribe to a board's event stream
// @Description  Upgrades to a websocket carrying every change event on the board
// @Tags         websocket
// @Param        boardId path string true "Board ID (UUID)"
// @Param        token query string true "JWT access token"
// @Success      101 {string} string "Switching Protocols"
// @Failure      401 {object} map[string]string
// @Router       /ws/boards/{boardId} [get]
func (h *WSHandler) HandleBoardStream(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID"})
		return
	}

	// Browsers cannot set headers on upgrade requests, so the token rides
	// in the query string.
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	userID, err := middleware.UserIDFromToken(token, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	// GetBoard enforces the same visibility policy as the REST surface
	ctx := context.WithValue(c.Request.Context(), "user_id", userID)
	if _, err := h.boardService.GetBoard(ctx, boardID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view this board"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection", zap.Error(err))
		return
	}

	client := &wsClient{
		conn:    conn,
		send:    make(chan []byte, 256),
		boardID: boardID,
		userID:  userID,
	}
	h.hub.add(client)

	go h.subscribeToRedis(client)
	go h.writePump(client)
	go h.readPump(client)
}

// readPump discards inbound frames; it exists to service pong replies and
// detect the peer closing the connection.
func (h *WSHandler) readPump(client *wsClient) {
	defer func() {
		h.hub.remove(client)
		client.conn.Close()
	}()

	client.conn.SetReadLimit(maxMessageSize)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Debug("Websocket closed unexpectedly",
					zap.String("boardId", client.boardID.String()),
					zap.Error(err))
			}
			return
		}
	}
}

func (h *WSHandler) writePump(client *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *WSHandler) subscribeToRedis(client *wsClient) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Recovered from panic in board subscription",
				zap.Any("panic", r),
				zap.String("boardId", client.boardID.String()))
		}
	}()

	pubsub := database.SubscribeTopic(context.Background(), notifier.BoardTopic(client.boardID))
	if pubsub == nil {
		h.logger.Warn("Redis pubsub not available, board stream will carry pings only",
			zap.String("boardId", client.boardID.String()))
		return
	}
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		select {
		case client.send <- []byte(msg.Payload):
		case <-time.After(1 * time.Second):
			h.logger.Warn("Dropping slow board stream subscriber",
				zap.String("boardId", client.boardID.String()))
			return
		}
	}
}
