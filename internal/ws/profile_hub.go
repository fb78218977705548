package ws

import (
	"net/http"
	"time"

	"investlion/config"
	"investlion/internal/auth"
	"investlion/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ProfileHub pushes fresh profile snapshots after balance mutations, the
// explicit replacement for the old always-on users/{uid} store subscription.
type ProfileHub struct {
	*Hub
}

func NewProfileHub() *ProfileHub {
	return &ProfileHub{Hub: NewHub()}
}

// PublishProfile sends the committed profile state to the owning user's
// connections.
func (p *ProfileHub) PublishProfile(u *models.User) {
	p.BroadcastToUser(u.ID, map[string]interface{}{"type": "profile", "profile": u})
}

// UpgradeProfileWS authenticates via ?token= and keeps the connection in the
// hub until the peer goes away.
func UpgradeProfileWS(cfg *config.JWTConfig, hub *ProfileHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		token := c.Query("token")
		if token == "" {
			conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"token required"}`))
			return
		}
		claims, err := auth.ParseAccessToken(cfg, token)
		if err != nil {
			conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid token"}`))
			return
		}
		client := &Client{
			UserID: claims.UserID,
			Send:   make(chan []byte, 256),
		}
		hub.Register(client)
		defer client.Close()
		go writePump(client, conn)
		readPump(conn)
	}
}

func writePump(c *Client, conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-c.Send:
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func readPump(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
