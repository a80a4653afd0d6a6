// Package httpserver implements the task service's HTTP surface: POST
// /run_task to submit a translation/compile/run request, GET
// /info/{task_id} to poll its outcome. Routes are wired on a plain
// http.ServeMux, with github.com/google/uuid minting a per-request
// correlation id for logs.
package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vta-lang/vta/internal/executor"
	"github.com/vta-lang/vta/internal/logging"
	"github.com/vta-lang/vta/internal/task"
	"github.com/vta-lang/vta/internal/tokenstore"
)

// Server serves the task submission and polling endpoints.
type Server struct {
	mux    *http.ServeMux
	pool   *executor.Pool
	tasks  *task.Store
	tokens *tokenstore.Store
	log    *slog.Logger
}

// New builds a Server wired to the given worker pool, task store, token
// store, and logger.
func New(pool *executor.Pool, tasks *task.Store, tokens *tokenstore.Store, log *slog.Logger) *Server {
	if log == nil {
		log = logging.Discard()
	}
	s := &Server{pool: pool, tasks: tasks, tokens: tokens, log: log}
	s.mux = http.NewServeMux()
	s.mux.HandleFunc("POST /run_task", s.handleRunTask)
	s.mux.HandleFunc("GET /info/{task_id}", s.handleInfo)
	return s
}

// ServeHTTP implements http.Handler, logging one line per request with a
// uuid correlation id (spec SPEC_FULL.md §A.2).
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	start := time.Now()
	lw := &loggingResponseWriter{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(lw, r)
	s.log.Info("request",
		slog.String("request_id", reqID),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", lw.status),
		slog.String("elapsed", logging.Elapsed(time.Since(start))),
	)
}

type loggingResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *loggingResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

type runTaskRequest struct {
	Source string `json:"source"`
	Stdin  string `json:"stdin"`
	Token  string `json:"token"`
}

type runTaskResponse struct {
	TaskID string `json:"task_id"`
}

func (s *Server) handleRunTask(w http.ResponseWriter, r *http.Request) {
	var req runTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	t := s.pool.Submit(req.Source, req.Stdin)

	if err := s.tokens.Put(r.Context(), t.ID, req.Token); err != nil {
		http.Error(w, "failed to record task token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, runTaskResponse{TaskID: t.ID})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("task_id")
	token := r.URL.Query().Get("token")

	ok, err := s.tokens.Verify(r.Context(), taskID, token)
	if err != nil || !ok {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	t, found := s.tasks.Get(taskID)
	if !found {
		http.Error(w, "unknown task id", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, infoResponse(t))
}

func infoResponse(t *task.Task) map[string]string {
	switch t.State {
	case task.StateDone:
		return map[string]string{"task_status": "done", "stdout": t.Stdout}
	case task.StateError:
		return map[string]string{"task_status": "error", "error": t.Error}
	default:
		return map[string]string{"task_status": "running"}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
