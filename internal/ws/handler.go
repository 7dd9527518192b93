package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/petmatch/petmatch-server/internal/http/middleware"
)

// upgrader performs the HTTP→WebSocket handshake. Origin checking is left to
// the CORS layer in front of this handler; browsers are not the only client.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Handler returns the Gin handler that upgrades GET /ws connections and
// attaches them to the hub. Identity is established in-band via the
// registerUser event, matching the mobile clients.
func Handler(hub *Hub, sender MessageSender, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the HTTP error response.
			middleware.LoggerFrom(c).Warn().Err(err).Msg("ws: upgrade failed")
			return
		}
		lg := middleware.LoggerFrom(c).With().Str("remote", conn.RemoteAddr().String()).Logger()
		newClient(hub, conn, sender, opts, lg)
	}
}
