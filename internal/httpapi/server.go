package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zaki1905/kirchhoff/internal/problems"
	"github.com/zaki1905/kirchhoff/internal/submission"
)

// Server exposes the checker over HTTP for the course web form.
type Server struct {
	svc         *submission.Service
	table       *problems.Table
	diagramBase string
}

// Options configures a Server.
type Options struct {
	// Service performs the actual checking. Required.
	Service *submission.Service

	// Table is the problem table served under /api/problems. Required,
	// and must be the same table the service grades against.
	Table *problems.Table

	// DiagramBase is the base URL circuit diagrams are published under.
	// Empty leaves the diagram field out of problem responses.
	DiagramBase string
}

// New builds a Server from the given options.
func New(opts Options) (*Server, error) {
	if opts.Service == nil {
		return nil, errors.New("httpapi: Service is required")
	}
	if opts.Table == nil {
		return nil, errors.New("httpapi: Table is required")
	}
	return &Server{
		svc:         opts.Service,
		table:       opts.Table,
		diagramBase: opts.DiagramBase,
	}, nil
}

// Handler returns the route table. Method matching is left to the mux
// patterns, so a wrong verb gets the stock 405.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /api/problems/{id}", s.handleProblem)
	mux.HandleFunc("POST /api/check/equations", s.handleCheckEquations)
	mux.HandleFunc("POST /api/check/currents", s.handleCheckCurrents)
	return mux
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps checker errors onto status codes: a set number we do not
// have is the client's mistake, a circuit we cannot solve is the operator's.
func writeError(w http.ResponseWriter, err error) {
	var notFound *problems.ErrSetNotFound
	var badInput *submission.InvalidInputError
	switch {
	case errors.As(err, &notFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &badInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
