package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lodeworks/tileworld-server/internal/server/config"
	"github.com/lodeworks/tileworld-server/internal/server/protocol"
	"github.com/lodeworks/tileworld-server/internal/server/world"
)

// Server streams generated chunks to websocket clients.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	world    *world.World
	upgrader websocket.Upgrader
}

// New creates a new Server with the given config and logger.
func New(cfg *config.Config, log *slog.Logger) *Server {
	return &Server{
		cfg:   cfg,
		log:   log,
		world: world.NewWorld(cfg.Seed, cfg.Params()),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Viewer clients are served from anywhere.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// World exposes the chunk cache, for tooling and tests.
func (s *Server) World() *world.World {
	return s.world
}

// Start begins serving websocket connections on /ws and blocks until the
// context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	srv := &http.Server{Addr: addr, Handler: mux}

	s.log.Info("server started",
		"port", s.cfg.Port,
		"seed", s.cfg.Seed,
		"keepDistance", s.cfg.KeepDistance,
	)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.log.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve on %s: %w", addr, err)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("upgrade connection", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer ws.Close()

	s.log.Info("client connected", "remote", ws.RemoteAddr())
	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Error("read message", "remote", ws.RemoteAddr(), "error", err)
			} else {
				s.log.Info("client disconnected", "remote", ws.RemoteAddr())
			}
			return
		}
		if err := s.handleMessage(ws, raw); err != nil {
			s.log.Error("handle message", "remote", ws.RemoteAddr(), "error", err)
			s.writeError(ws, err)
		}
	}
}

// handleMessage dispatches one client message. Errors are reported back to
// the client; only write failures tear the connection down.
func (s *Server) handleMessage(ws *websocket.Conn, raw []byte) error {
	env, err := protocol.Decode(raw)
	if err != nil {
		return err
	}

	switch env.Type {
	case protocol.TypeChunkRequest:
		var req protocol.ChunkRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return fmt.Errorf("parse chunk request: %w", err)
		}
		return s.sendChunk(ws, req.X, req.Y)

	case protocol.TypeView:
		var v protocol.View
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return fmt.Errorf("parse view: %w", err)
		}
		keep := v.KeepDistance
		if keep <= 0 {
			keep = s.cfg.KeepDistance
		}
		evicted := s.world.UnloadDistantChunks(v.CenterX, v.CenterY, keep)
		if evicted > 0 {
			s.log.Info("evicted chunks", "count", evicted, "centerX", v.CenterX, "centerY", v.CenterY)
		}
		return nil

	case protocol.TypeReseed:
		var rs protocol.Reseed
		if err := json.Unmarshal(env.Data, &rs); err != nil {
			return fmt.Errorf("parse reseed: %w", err)
		}
		s.world.Reseed(rs.Seed)
		s.log.Info("world reseeded", "seed", rs.Seed)
		return nil

	default:
		return fmt.Errorf("unknown message type %q", env.Type)
	}
}

func (s *Server) sendChunk(ws *websocket.Conn, cx, cy int) error {
	grid := s.world.GetChunk(cx, cy)
	cd, err := protocol.EncodeChunk(grid)
	if err != nil {
		return fmt.Errorf("encode chunk (%d, %d): %w", cx, cy, err)
	}
	msg, err := protocol.Encode(protocol.TypeChunk, cd)
	if err != nil {
		return err
	}
	return ws.WriteMessage(websocket.TextMessage, msg)
}

func (s *Server) writeError(ws *websocket.Conn, cause error) {
	msg, err := protocol.Encode(protocol.TypeError, protocol.Error{Message: cause.Error()})
	if err != nil {
		return
	}
	ws.WriteMessage(websocket.TextMessage, msg)
}
