package websocket

import (
	"time"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Viewer is one connected presentation-layer client. The feed is one-way:
// the view layer only listens for render instructions.
type Viewer struct {
	Hub  *Hub
	Conn *websocket.Conn

	// Buffered channel of outbound render instructions.
	Send chan []byte
}

// readPump drains the connection so pings/pongs work and close frames are
// noticed. Inbound payloads are ignored.
func (v *Viewer) readPump() {
	defer func() {
		v.Hub.unregister <- v
		v.Conn.Close()
	}()
	v.Conn.SetReadLimit(maxMessageSize)
	v.Conn.SetReadDeadline(time.Now().Add(pongWait))
	v.Conn.SetPongHandler(func(string) error {
		v.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := v.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

// writePump pumps render instructions from the hub to the connection.
func (v *Viewer) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		v.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-v.Send:
			v.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				v.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := v.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			v.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeViewer attaches a websocket connection to the hub.
func ServeViewer(hub *Hub, c *websocket.Conn) {
	viewer := &Viewer{Hub: hub, Conn: c, Send: make(chan []byte, 16)}
	viewer.Hub.register <- viewer

	go viewer.writePump()
	viewer.readPump()
}
