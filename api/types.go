// Package api - Request/response contracts
package api

import (
	"github.com/shopspring/decimal"

	"travel-pricing/core/aggregate"
	"travel-pricing/core/estimate"
	"travel-pricing/core/quote"
	"travel-pricing/core/types"
)

// QuoteRequest is the POST /quote body.
// The markup rule is not part of the request; the server prices with
// the single active rule from its rates snapshot.
type QuoteRequest struct {
	// Stays are the itinerary legs
	Stays []aggregate.Stay `json:"stays"`

	// Travelers is the party composition
	Travelers types.TravelerCount `json:"travelers"`

	// VisaEnabled gates visa line items
	VisaEnabled bool `json:"visa_enabled"`

	// Target is the client-facing currency; empty uses the server default
	Target string `json:"target"`

	// AgentMarkup is an optional agent-entered flat markup in the
	// target currency
	AgentMarkup *decimal.Decimal `json:"agent_markup,omitempty"`
}

// QuoteResponse is the POST /quote response
type QuoteResponse struct {
	// Quote is the full pricing result
	Quote *quote.Quote `json:"quote"`

	// Metadata describes the computation
	Metadata ResponseMetadata `json:"metadata"`
}

// EstimateRequest is the POST /estimate body
type EstimateRequest struct {
	estimate.Inputs
}

// EstimateResponse is the POST /estimate response
type EstimateResponse struct {
	// Estimate is the quick estimate result
	Estimate *estimate.Result `json:"estimate"`

	// Metadata describes the computation
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes a pricing computation
type ResponseMetadata struct {
	// EngineVersion is the server version
	EngineVersion string `json:"engine_version"`

	// DurationMs is the computation wall time
	DurationMs int64 `json:"duration_ms"`
}

// CurrencyInfo is one entry of GET /currencies
type CurrencyInfo struct {
	Code   string          `json:"code"`
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate_to_base"`
	IsBase bool            `json:"is_base"`
}
