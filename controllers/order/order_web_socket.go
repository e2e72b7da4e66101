package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/IskDev0/organick-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const wsWriteWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// OrderWebSocketHandler streams newly placed orders to admin dashboards.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

func broadcastNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		client.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			// a stalled or dead socket must not wedge the checkout path
			client.Close()
			delete(wsClients, client)
		}
	}
}
