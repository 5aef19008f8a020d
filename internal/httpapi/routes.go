package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KK-9684/vue-sockets/internal/session"
	"github.com/KK-9684/vue-sockets/internal/ws"
)

func SetupRoutes(s *session.Session, publicDir string, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/", Index(s, log))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(s))

	// Styled assets are produced ahead of time; we just serve the directory.
	assets := http.StripPrefix("/static/", http.FileServer(http.Dir(publicDir)))
	r.Get("/static/*", assets.ServeHTTP)

	return r
}
