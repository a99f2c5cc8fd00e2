// Package server streams generated dungeons to websocket viewers.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Server answers generate requests and broadcasts each dungeon to all viewers.
type Server struct {
	hub          *Hub
	defaults     world.Config
	writeTimeout time.Duration
	sequence     atomic.Uint64
	mux          *http.ServeMux
}

// New creates a server that fills unspecified request fields from defaults.
func New(defaults world.Config, writeTimeout time.Duration) *Server {
	s := &Server{
		hub:          NewHub(),
		defaults:     defaults,
		writeTimeout: writeTimeout,
		mux:          http.NewServeMux(),
	}
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/stream", s.handleStream)
	return s
}

// Handler returns the HTTP handler serving /healthz and /stream.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"status": "ok", "viewers": s.hub.Count()}); err != nil {
		slog.DebugContext(r.Context(), "write health response", "error", err)
	}
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}
	s.hub.Add(conn)
	defer s.hub.Remove(conn)
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := r.Context()
	if err := s.send(ctx, conn, "", TypeHello, HelloPayload{Defaults: s.defaults}); err != nil {
		return
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			_ = s.send(ctx, conn, "", TypeError, ErrorPayload{Message: "malformed request"})
			continue
		}

		switch req.Type {
		case TypeGenerate:
			s.generate(ctx, conn, req.Payload)
		default:
			_ = s.send(ctx, conn, "", TypeError, ErrorPayload{Message: fmt.Sprintf("unknown request type %q", req.Type)})
		}
	}
}

// generate builds a dungeon and broadcasts it; errors go back to the requester only.
func (s *Server) generate(ctx context.Context, conn *websocket.Conn, payload json.RawMessage) {
	runID := uuid.NewString()

	ctx, span := telemetry.Tracer("server").Start(ctx, "server.generate")
	defer span.End()
	span.SetAttributes(attribute.String("run.id", runID))

	cfg := s.defaults
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &cfg); err != nil {
			_ = s.send(ctx, conn, runID, TypeError, ErrorPayload{Message: "malformed config: " + err.Error()})
			return
		}
	}

	d, err := world.Generate(ctx, cfg)
	if err != nil {
		slog.WarnContext(ctx, "generation rejected", "run_id", runID, "error", err)
		_ = s.send(ctx, conn, runID, TypeError, ErrorPayload{Message: err.Error()})
		return
	}

	msg, err := json.Marshal(Envelope{
		Sequence: s.sequence.Add(1),
		RunID:    runID,
		Type:     TypeDungeon,
		Payload:  NewDungeonPayload(d),
	})
	if err != nil {
		slog.ErrorContext(ctx, "encode dungeon", "run_id", runID, "error", err)
		return
	}

	slog.InfoContext(ctx, "dungeon generated", "run_id", runID, "seed", d.Seed, "viewers", s.hub.Count())
	s.hub.Broadcast(msg, s.writeTimeout)
}

// send writes a single envelope to one connection.
func (s *Server) send(ctx context.Context, conn *websocket.Conn, runID, typ string, payload any) error {
	msg, err := json.Marshal(Envelope{
		Sequence: s.sequence.Add(1),
		RunID:    runID,
		Type:     typ,
		Payload:  payload,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, msg)
}
