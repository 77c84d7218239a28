package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/input"
	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/output"
	"github.com/Eugene-WebDev/se-ranking-node/internal/domain/entity"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog"
)

const maxBodyBytes = 1 << 20

// Server lets a remote workflow host run a batch over HTTP.
type Server struct {
	executor     input.BatchExecutor
	defaultToken string
	logger       output.LoggerPort
}

type Config struct {
	// DefaultToken is used when a request has no Authorization header.
	DefaultToken string
	Logger       output.LoggerPort
}

func NewServer(executor input.BatchExecutor, cfg Config) *Server {
	return &Server{
		executor:     executor,
		defaultToken: cfg.DefaultToken,
		logger:       cfg.Logger,
	}
}

type executionRequest struct {
	Operation      string              `json:"operation"`
	ContinueOnFail bool                `json:"continue_on_fail"`
	Items          []entity.ItemParams `json:"items"`
}

type executionError struct {
	Message string `json:"message"`
	Item    *int   `json:"item,omitempty"`
	Code    string `json:"code,omitempty"`
}

type executionResponse struct {
	RunID   string          `json:"run_id,omitempty"`
	Records []entity.Record `json:"records"`
	Error   *executionError `json:"error,omitempty"`
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(httplog.NewLogger("seranking", httplog.Options{JSON: true})))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/v1/executions", s.handleExecute)
	return r
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req executionRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, executionResponse{
			Records: []entity.Record{},
			Error:   &executionError{Message: "invalid request body: " + err.Error()},
		})
		return
	}

	batch := entity.Batch{
		Operation:   entity.Operation(req.Operation),
		Mode:        entity.RunModeFromContinueOnFail(req.ContinueOnFail),
		Credentials: entity.Credentials{APIToken: s.token(r)},
		Items:       req.Items,
	}

	result, err := s.executor.Execute(r.Context(), batch)
	resp := executionResponse{Records: []entity.Record{}}
	if result != nil {
		resp.RunID = result.RunID
		if result.Records != nil {
			resp.Records = result.Records
		}
	}
	if err == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	var itemErr *entity.ItemError
	var runErr *entity.RunError
	switch {
	case errors.As(err, &itemErr):
		idx := itemErr.Index
		resp.Error = &executionError{Message: itemErr.Error(), Item: &idx, Code: itemErr.Code}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	case errors.As(err, &runErr):
		resp.Error = &executionError{Message: runErr.Error()}
		writeJSON(w, http.StatusBadRequest, resp)
	default:
		s.logger.Error("Execution failed", "error", err)
		resp.Error = &executionError{Message: err.Error()}
		writeJSON(w, http.StatusInternalServerError, resp)
	}
}

func (s *Server) token(r *http.Request) string {
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Token "); ok {
		return strings.TrimSpace(token)
	}
	return s.defaultToken
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
