package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"nhooyr.io/websocket"

	"github.com/KK-9684/vue-sockets/internal/session"
	"github.com/KK-9684/vue-sockets/internal/types"
)

func Handler(s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// In dev ONLY, you can loosen origin checks:
			// OriginPatterns: []string{"http://localhost:*", "http://127.0.0.1:*"},
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan session.Update, 8)
		reply := make(chan uint64, 1)
		s.Inbox() <- session.Join{Outbox: out, Reply: reply}
		clientID := <-reply
		defer func() { s.Inbox() <- session.Leave{ClientID: clientID} }()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for u := range out {
				msg := types.ServerMessage{Type: u.Kind, HTML: u.HTML}
				payload, _ := json.Marshal(msg)
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				// Treat clean close/going-away as normal:
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Otherwise, just exit (session.Leave in defer):
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				_ = conn.Write(r.Context(), websocket.MessageText,
					[]byte(`{"type":"error","error":"bad json"}`))
				continue
			}

			msg, ok := toSessionMsg(clientID, cm)
			if !ok {
				_ = conn.Write(r.Context(), websocket.MessageText,
					[]byte(`{"type":"error","error":"unknown type"}`))
				continue
			}

			s.Inbox() <- msg
		}
	}
}

func toSessionMsg(clientID uint64, m types.ClientMessage) (session.Msg, bool) {
	switch m.Type {
	case "add-player":
		return session.AddPlayer{ClientID: clientID, Name: m.Name}, true
	case "pick-player":
		return session.PickPlayer{ClientID: clientID, PlayerID: m.PlayerID}, true
	case "add-character":
		return session.AddCharacter{ClientID: clientID, CharacterID: m.CharacterID}, true
	default:
		return nil, false
	}
}
