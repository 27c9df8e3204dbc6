// Package ws is the realtime gateway: websocket upgrade, the authenticate
// handshake, frame dispatch and the HTTP companion endpoints for token
// minting.
package ws

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"parley/errors"
	"parley/services"
)

type Server struct {
	log         *slog.Logger
	dispatcher  *Dispatcher
	authService services.IAuthService
	upgrader    websocket.Upgrader
	bufferSize  int
	authTimeout time.Duration
}

func NewServer(log *slog.Logger, dispatcher *Dispatcher, authService services.IAuthService,
	allowedOrigins []string, bufferSize int, authTimeout time.Duration) *Server {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	return &Server{
		log:         log,
		dispatcher:  dispatcher,
		authService: authService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true // non-browser clients
				}
				if len(allowed) == 0 {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
		bufferSize:  bufferSize,
		authTimeout: authTimeout,
	}
}

// Routes mounts the gateway endpoints on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	// The request context dies when this handler returns, so the session
	// gets its own; the pumps exit when the socket closes.
	client := NewClient(conn, s.dispatcher, s.log, s.bufferSize, s.authTimeout)
	go client.Run(context.Background())
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.handleCredentials(w, r, func(ctx context.Context, req credentialsRequest) (services.Token, error) {
		return s.authService.Login(ctx, req.Email, req.Password)
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.handleCredentials(w, r, func(ctx context.Context, req credentialsRequest) (services.Token, error) {
		return s.authService.Register(ctx, req.Email, req.Username, req.Password)
	})
}

func (s *Server) handleCredentials(w http.ResponseWriter, r *http.Request,
	fn func(context.Context, credentialsRequest) (services.Token, error)) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	token, err := fn(r.Context(), req)
	if err != nil {
		status := http.StatusUnauthorized
		switch {
		case stderrors.Is(err, errors.ErrUserAlreadyExists):
			status = http.StatusConflict
		case stderrors.Is(err, errors.ErrInvalidPassword):
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tokenResponse{Token: string(token)})
}
