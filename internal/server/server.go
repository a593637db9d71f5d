// Package server exposes the calculators over a small JSON HTTP API.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/aufin/calc-engine/internal/calculation"
	"github.com/aufin/calc-engine/internal/config"
	"github.com/aufin/calc-engine/internal/domain"
)

const maxBodyBytes = 1 << 20

// Server wires the calculators behind JSON endpoints.
type Server struct {
	logger     *zap.Logger
	registry   *config.Registry
	pay        *calculation.PaySummaryCalculator
	engine     *calculation.AmortisationEngine
	borrowing  *calculation.BorrowingCalculator
	comparison *calculation.LoanComparisonCalculator
}

// New creates a server. A nil logger disables logging.
func New(logger *zap.Logger, registry *config.Registry) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	engine := calculation.NewAmortisationEngine(logger)
	return &Server{
		logger:     logger,
		registry:   registry,
		pay:        calculation.NewPaySummaryCalculator(registry),
		engine:     engine,
		borrowing:  calculation.NewBorrowingCalculator(logger),
		comparison: calculation.NewLoanComparisonCalculator(engine),
	}
}

// Handler returns the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/taxyears", s.handleTaxYears)
	mux.HandleFunc("/api/pay", s.handlePay)
	mux.HandleFunc("/api/loan", s.handleLoan)
	mux.HandleFunc("/api/borrowing", s.handleBorrowing)
	mux.HandleFunc("/api/compare", s.handleCompare)
	return mux
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTaxYears(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, "taxyears", http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"taxYears": s.registry.IDs()})
}

func (s *Server) handlePay(w http.ResponseWriter, r *http.Request) {
	var req domain.PayRequest
	if !s.decode(w, r, "pay", &req) {
		return
	}
	resp, err := s.pay.Calculate(req)
	if err != nil {
		s.respondError(w, "pay", http.StatusUnprocessableEntity, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLoan(w http.ResponseWriter, r *http.Request) {
	var req domain.LoanInputs
	if !s.decode(w, r, "loan", &req) {
		return
	}
	result, err := s.engine.GenerateSchedule(req)
	if err != nil {
		s.respondError(w, "loan", http.StatusUnprocessableEntity, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleBorrowing(w http.ResponseWriter, r *http.Request) {
	var req domain.BorrowingInputs
	if !s.decode(w, r, "borrowing", &req) {
		return
	}
	result, err := s.borrowing.Calculate(req)
	if err != nil {
		s.respondError(w, "borrowing", http.StatusUnprocessableEntity, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req domain.ComparisonInputs
	if !s.decode(w, r, "compare", &req) {
		return
	}
	result, err := s.comparison.Compare(req)
	if err != nil {
		s.respondError(w, "compare", http.StatusUnprocessableEntity, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, op string, out interface{}) bool {
	if r.Method != http.MethodPost {
		s.respondError(w, op, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return false
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		s.respondError(w, op, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, op string, status int, err error) {
	s.logger.Warn("request failed", zap.String("op", op), zap.Int("status", status), zap.Error(err))
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
