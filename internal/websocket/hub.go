package websocket

import (
	"encoding/json"
	"sync"

	"jf-travels-be/internal/dto"
	"jf-travels-be/internal/pkg/logger"
)

// Hub fans fresh render instructions out to every connected viewer. Viewers
// are anonymous: the presentation feed carries no per-user targeting, the
// render decision itself already encodes what the session may see.
type Hub struct {
	viewers map[*Viewer]struct{}

	register   chan *Viewer
	unregister chan *Viewer

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Viewer),
		unregister: make(chan *Viewer),
		viewers:    make(map[*Viewer]struct{}),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case viewer := <-h.register:
			h.mu.Lock()
			h.viewers[viewer] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("Hub", "Viewer connected", map[string]interface{}{"viewers": h.ViewerCount()})

		case viewer := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.viewers[viewer]; ok {
				delete(h.viewers, viewer)
				close(viewer.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Viewer disconnected", map[string]interface{}{"viewers": h.ViewerCount()})
		}
	}
}

// BroadcastRender pushes the instruction to every viewer. Slow viewers are
// dropped rather than allowed to stall the feed.
func (h *Hub) BroadcastRender(instruction dto.RenderInstruction) {
	data, err := json.Marshal(map[string]interface{}{
		"type": "render",
		"data": instruction,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal render instruction", map[string]interface{}{"error": err.Error()})
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for viewer := range h.viewers {
		select {
		case viewer.Send <- data:
		default:
			h.logger.Warn("Hub", "Viewer send buffer full, dropping connection", nil)
			go func(v *Viewer) { h.unregister <- v }(viewer)
		}
	}
}

func (h *Hub) ViewerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}
