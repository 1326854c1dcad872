package server

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"go.uber.org/zap"

	"emperor/internal/config"
)

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	handlers *Handlers
	cfg      config.Config
	static   embed.FS
	log      *zap.Logger
}

func New(cfg config.Config, static embed.FS, log *zap.Logger) *Server {
	return &Server{
		handlers: NewHandlers(cfg, log),
		cfg:      cfg,
		static:   static,
		log:      log,
	}
}

func (s *Server) Start() error {
	mux := http.NewServeMux()

	sub, err := fs.Sub(s.static, "web/static")
	if err != nil {
		return fmt.Errorf("static fs: %w", err)
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	mux.HandleFunc("/api/create", s.handlers.HandleCreateMatch)
	mux.HandleFunc("/api/qr", s.handlers.HandleQR)
	mux.HandleFunc("/api/player-id", s.handlers.HandlePlayerID)
	mux.HandleFunc("/ws", s.handlers.HandleWS)

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.log.Info("listening",
		zap.String("addr", addr),
		zap.Int("seats", s.cfg.Seats))
	return http.ListenAndServe(addr, mux)
}
