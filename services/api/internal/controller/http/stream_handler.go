package http

import (
	"context"
	"net/http"

	"bitnest/pkg/jwt"
	"bitnest/pkg/logger"
	"bitnest/services/api/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamHandler pushes a user's settlements over a WebSocket as they complete.
type StreamHandler struct {
	redisClient *redis.Client
	jwtService  *jwt.Service
	logger      *logger.Logger
}

func NewStreamHandler(redisClient *redis.Client, jwtService *jwt.Service, logger *logger.Logger) *StreamHandler {
	return &StreamHandler{
		redisClient: redisClient,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Settlements authenticates with the token query parameter, since browsers cannot set headers on
// WebSocket handshakes.
func (h *StreamHandler) Settlements(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token required"})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()
	pubsub := h.redisClient.Subscribe(ctx, notify.SettlementChannel(userID))
	defer pubsub.Close()
	if _, err := pubsub.Receive(ctx); err != nil {
		h.logger.Error("Failed to subscribe to settlements for user %s: %v", userID, err)
		return
	}

	h.logger.Info("Settlement stream opened for user %s", userID)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	messages := pubsub.Channel()
	for {
		select {
		case <-done:
			h.logger.Info("Settlement stream closed for user %s", userID)
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				h.logger.Warn("Failed to write settlement to user %s: %v", userID, err)
				return
			}
		}
	}
}
