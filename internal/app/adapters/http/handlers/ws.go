package handlers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"regexlab/internal/app/ports"
	"time"
)

const wsWriteTimeout = 10 * time.Second

var errMissingIndex = errors.New("index is required")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

type wsMessage struct {
	Type     string          `json:"type"`
	Data     string          `json:"data,omitempty"`
	Index    *int            `json:"index,omitempty"`
	Snapshot *ports.Snapshot `json:"snapshot,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// Live - живой режим: каждое сообщение клиента применяется к сессии, в ответ уходит свежий снапшот.
func (h *Handlers) Live(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "session", s.ID, "error", err.Error())
		return
	}
	defer conn.Close()

	write := func(msg wsMessage) error {
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		return conn.WriteJSON(msg)
	}

	snap := s.Snapshot()
	if err := write(wsMessage{Type: "snapshot", Snapshot: &snap}); err != nil {
		return
	}

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug("Websocket closed", "session", s.ID, "error", err.Error())
			}
			return
		}

		// Get продлевает жизнь сессии в хранилище
		if _, err := h.sessions.Get(s.ID); err != nil {
			_ = write(wsMessage{Type: "error", Error: err.Error()})
			return
		}

		var opErr error
		known := true
		snap := s.Apply(func(v ports.ValidatorPort) {
			switch msg.Type {
			case "pattern":
				h.setPattern(v, msg.Data)
			case "preset":
				_, opErr = h.applyPreset(v, msg.Data)
			case "add":
				h.addTestString(v, msg.Data)
			case "remove":
				if msg.Index == nil {
					opErr = errMissingIndex
					return
				}
				h.removeTestString(v, *msg.Index)
			case "refresh":
			default:
				known = false
			}
		})

		reply := wsMessage{Type: "snapshot", Snapshot: &snap}
		switch {
		case !known:
			reply = wsMessage{Type: "error", Error: "unknown message type: " + msg.Type}
		case opErr != nil:
			reply = wsMessage{Type: "error", Error: opErr.Error()}
		}

		if err := write(reply); err != nil {
			h.log.Debug("Websocket write failed", "session", s.ID, "error", err.Error())
			return
		}
	}
}
