package httpapi

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/KK-9684/vue-sockets/internal/session"
	"github.com/KK-9684/vue-sockets/internal/views"
)

// Index serves the full page. Late joiners get current roster and catalog
// state here; the websocket only carries deltas after that.
func Index(s *session.Session, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan session.View, 1)
		s.Inbox() <- session.GetState{Reply: reply}
		view := <-reply

		html, err := views.Index(view.Characters, view.Players)
		if err != nil {
			log.Error("index render failed", zap.Error(err))
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, html)
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
