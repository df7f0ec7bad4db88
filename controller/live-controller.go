package controller

import (
	"net/http"
	"sync"

	"sargalayam/metrics"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// LiveController pushes a refresh signal to connected result views whenever
// an admin mutation lands, so public pages can re-fetch instead of polling.
type LiveController struct {
	mu          sync.Mutex
	connections map[*websocket.Conn]bool
}

func NewLiveController() *LiveController {
	return &LiveController{
		connections: make(map[*websocket.Conn]bool),
	}
}

func setupLiveController(e *LiveController) []RouteInfo {
	return []RouteInfo{
		{Method: "GET", Path: "/results/live", HandlerFunc: e.liveResultsHandler()},
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// allow any host origin to connect to the websocket
		return true
	},
}

// @id LiveResults
// @Description Websocket pushing a refresh signal on every results mutation
// @Tags results
// @Router /results/live [get]
func (e *LiveController) liveResultsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		e.mu.Lock()
		e.connections[conn] = true
		e.mu.Unlock()
		metrics.LiveConnections.Inc()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		e.removeConnection(conn)
	}
}

var refreshPayload = []byte(`{"type":"results_updated"}`)

func (e *LiveController) BroadcastRefresh() {
	e.mu.Lock()
	stale := make([]*websocket.Conn, 0)
	for conn := range e.connections {
		if err := conn.WriteMessage(websocket.TextMessage, refreshPayload); err != nil {
			stale = append(stale, conn)
		}
	}
	e.mu.Unlock()
	for _, conn := range stale {
		e.removeConnection(conn)
	}
}

func (e *LiveController) removeConnection(conn *websocket.Conn) {
	e.mu.Lock()
	_, ok := e.connections[conn]
	if ok {
		delete(e.connections, conn)
	}
	e.mu.Unlock()
	if ok {
		_ = conn.Close()
		metrics.LiveConnections.Dec()
	}
}
