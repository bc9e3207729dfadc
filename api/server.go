// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs pricing logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"travel-pricing/core/currency"
	"travel-pricing/core/estimate"
	"travel-pricing/core/markup"
	"travel-pricing/core/quote"
	"travel-pricing/core/types"
	"travel-pricing/internal/errors"
)

// Server is the API server
type Server struct {
	mux     *http.ServeMux
	version string

	table           *currency.Table
	rule            markup.Rule
	defaultCurrency types.Currency
}

// NewServer creates a new API server over a rates snapshot
func NewServer(version string, table *currency.Table, rule markup.Rule, defaultCurrency types.Currency) *Server {
	s := &Server{
		mux:             http.NewServeMux(),
		version:         version,
		table:           table,
		rule:            rule,
		defaultCurrency: defaultCurrency,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /quote", s.handleQuote)
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)

	// Supporting endpoints
	s.mux.HandleFunc("GET /currencies", s.handleCurrencies)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleQuote handles POST /quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Parsing("invalid request body", err), http.StatusBadRequest)
		return
	}

	target := types.Currency(req.Target)
	if target == "" {
		target = s.defaultCurrency
	}

	result, err := quote.Price(quote.Request{
		Stays:         req.Stays,
		Travelers:     req.Travelers,
		VisaEnabled:   req.VisaEnabled,
		Target:        target,
		Rule:          s.rule,
		AgentOverride: req.AgentMarkup,
	}, s.table)
	if err != nil {
		s.writeError(w, err, statusFor(err))
		return
	}

	s.writeJSON(w, QuoteResponse{
		Quote: result,
		Metadata: ResponseMetadata{
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Parsing("invalid request body", err), http.StatusBadRequest)
		return
	}

	result, err := estimate.Estimate(req.Inputs)
	if err != nil {
		s.writeError(w, err, statusFor(err))
		return
	}

	s.writeJSON(w, EstimateResponse{
		Estimate: result,
		Metadata: ResponseMetadata{
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// handleCurrencies handles GET /currencies
func (s *Server) handleCurrencies(w http.ResponseWriter, r *http.Request) {
	entries := s.table.Entries()
	infos := make([]CurrencyInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, CurrencyInfo{
			Code:   string(e.Code),
			Symbol: e.Symbol,
			Rate:   e.RateToBase,
			IsBase: e.IsBase,
		})
	}

	s.writeJSON(w, map[string]interface{}{
		"base":       s.table.Base(),
		"currencies": infos,
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "travel-pricing",
	}, http.StatusOK)
}

// statusFor maps engine error types to HTTP status codes
func statusFor(err error) int {
	if e, ok := err.(*errors.Error); ok {
		switch e.Type {
		case errors.TypeInput, errors.TypeParsing:
			return http.StatusBadRequest
		case errors.TypeUnknownCurrency, errors.TypeInvalidRate, errors.TypeInvalidCapacity:
			return http.StatusUnprocessableEntity
		case errors.TypeInactiveRule:
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, err error, status int) {
	if e, ok := err.(*errors.Error); ok {
		s.writeJSON(w, map[string]interface{}{"error": e}, status)
		return
	}
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{"message": err.Error()},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
