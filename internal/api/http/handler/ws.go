package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

const wsWriteWait = 10 * time.Second

// MessageFeed delivers stored messages addressed to a user.
type MessageFeed interface {
	Subscribe(username string) (<-chan model.Message, func())
}

type messageEvent struct {
	Type    string          `json:"type"`
	Message messageResponse `json:"message"`
}

// WS pushes new messages to the receiver over a websocket.
type WS struct {
	feed           MessageFeed
	contextManager model.ContextManager
	upgrader       websocket.Upgrader
	logger         *logger.Logger
}

// NewWS creates a new WS handler. CORS is enforced by the router, so the
// upgrader accepts any origin.
func NewWS(feed MessageFeed, contextManager model.ContextManager, logger *logger.Logger) *WS {
	return &WS{
		feed:           feed,
		contextManager: contextManager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

func (h *WS) Serve(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.logger.Debug("WS handler: upgrade failed", "error", err.Error())
		return nil
	}
	defer conn.Close()

	messages, unsubscribe := h.feed.Subscribe(user.Username)
	defer unsubscribe()

	h.logger.Info("WS handler: client connected", "username", user.Username)

	// The client never sends anything; reading detects the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-messages:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return nil
			}
			if err := conn.WriteJSON(messageEvent{Type: "message", Message: newMessageResponse(msg)}); err != nil {
				h.logger.Debug("WS handler: write failed",
					"username", user.Username,
					"error", err.Error())
				return nil
			}
		case <-closed:
			h.logger.Info("WS handler: client disconnected", "username", user.Username)
			return nil
		}
	}
}
