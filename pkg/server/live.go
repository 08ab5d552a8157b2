package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vango-dev/formselect/internal/errors"
	"github.com/vango-dev/formselect/pkg/selectlist"
)

// LiveMessage is a render request sent over the live preview socket.
type LiveMessage struct {
	// ID is echoed back in the reply.
	ID string `json:"id,omitempty"`

	// Kind is "dropdown" or "listbox".
	Kind string `json:"kind"`

	// Request is a RenderRequest.
	Request json.RawMessage `json:"request"`
}

// LiveReply answers one LiveMessage. Exactly one of HTML and Error is set.
type LiveReply struct {
	ID       string          `json:"id,omitempty"`
	HTML     string          `json:"html,omitempty"`
	Location string          `json:"location,omitempty"`
	Error    *errors.Payload `json:"error,omitempty"`
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written an HTTP error.
		s.logger.Warn("websocket upgrade failed", "error", errors.New("E060").Wrap(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(s.config.MaxBodyBytes)
	conn.SetReadDeadline(time.Time{})
	s.logger.Debug("live preview connected", "remote", r.RemoteAddr)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("live preview read failed", "error", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		reply := s.live(r, data)

		conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Warn("live preview write failed", "error", err)
			return
		}
	}
}

func (s *Server) live(r *http.Request, data []byte) LiveReply {
	var msg LiveMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return errorReply("", errors.New("E011").WithDetail(err.Error()))
	}

	kind, err := selectlist.ParseKind(msg.Kind)
	if err != nil {
		return errorReply(msg.ID, err)
	}
	req, err := ParseRenderRequest(msg.Request)
	if err != nil {
		s.config.Metrics.RecordRenderError(string(kind), errors.CodeOf(err))
		return errorReply(msg.ID, err)
	}

	res, err := s.Render(r.Context(), kind, req)
	if err != nil {
		return errorReply(msg.ID, err)
	}
	return LiveReply{ID: msg.ID, HTML: string(res.HTML), Location: res.Location}
}

func errorReply(id string, err error) LiveReply {
	p := errors.ToPayload(err)
	return LiveReply{ID: id, Error: &p}
}
