package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/dangal-ics/planner-backend/internal/config"
	"github.com/dangal-ics/planner-backend/internal/middleware"
	ws "github.com/dangal-ics/planner-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams schedule-change notifications to connected views.
type WSHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// ScheduleStream godoc
// WS /ws/v1/student/schedule/stream
// Upgrades to WebSocket and relays schedule-change events published for this
// student. Clients re-fetch their view on each event.
func (h *WSHandler) ScheduleStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Int("student_id", claims.StudentID).Logger()
	wsLog.Info().Msg("Student connected")

	ctx := c.Request.Context()
	sub := h.rdb.Subscribe(ctx, config.CacheKey.ScheduleChannel(claims.StudentID))
	defer sub.Close()

	// The relay goroutine and the read loop below both send on the socket,
	// so all writes go through the locked wrapper.
	sock := ws.NewConn(conn)

	// Relay published change events until the subscription or the socket dies.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range sub.Channel() {
			if err := sock.WriteRaw([]byte(msg.Payload)); err != nil {
				wsLog.Debug().Err(err).Msg("Relay write failed")
				return
			}
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			break
		}

		var msg ws.RequestEnvelope
		if err := json.Unmarshal(raw, &msg); err != nil {
			sock.WriteError("invalid message")
			continue
		}

		switch msg.Action {
		case ws.ActionPing:
			sock.WriteTyped(ws.PongResponse{Event: ws.EventPong})
		default:
			wsLog.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
			sock.WriteError("unknown action: " + string(msg.Action))
		}
	}

	sub.Close()
	<-done
}
