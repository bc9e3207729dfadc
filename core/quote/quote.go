// Package quote orchestrates the detailed pricing pipeline.
//
// It is the single pricing entry point: aggregation, occupancy
// validation and the markup chain all run here, so there is exactly one
// place where a net cost becomes a client-facing price.
package quote

import (
	"github.com/shopspring/decimal"

	"go.uber.org/zap"

	"travel-pricing/core/aggregate"
	"travel-pricing/core/allocation"
	"travel-pricing/core/currency"
	"travel-pricing/core/markup"
	"travel-pricing/core/types"
	"travel-pricing/internal/logging"
)

// Request is a complete detailed pricing request
type Request struct {
	// Stays are the itinerary legs
	Stays []aggregate.Stay `json:"stays"`

	// Travelers is the party composition
	Travelers types.TravelerCount `json:"travelers"`

	// VisaEnabled gates visa line items
	VisaEnabled bool `json:"visa_enabled"`

	// Target is the client-facing currency
	Target types.Currency `json:"target"`

	// Rule is the active markup rule snapshot
	Rule markup.Rule `json:"rule"`

	// AgentOverride is an optional agent-entered flat markup in the
	// target currency, taking precedence over the rule's agent formula
	AgentOverride *decimal.Decimal `json:"agent_override,omitempty"`
}

// Quote is the full pricing result
type Quote struct {
	// Aggregate is the net cost result with per-line detail
	Aggregate *aggregate.Result `json:"aggregate"`

	// Breakdown is the markup chain output
	Breakdown markup.Breakdown `json:"breakdown"`

	// Occupancy reports room constraint violations per stay.
	// Violations do not block pricing; the caller decides.
	Occupancy []StayOccupancy `json:"occupancy,omitempty"`

	// SuggestedRooms is the advisor's room count for the party
	SuggestedRooms int `json:"suggested_rooms"`
}

// StayOccupancy pairs a stay label with its occupancy check
type StayOccupancy struct {
	Stay   string                     `json:"stay"`
	Report allocation.OccupancyReport `json:"report"`
}

// Price runs the full pipeline against a rate table snapshot.
func Price(req Request, table *currency.Table) (*Quote, error) {
	if err := req.Travelers.Validate(); err != nil {
		return nil, err
	}

	agg, err := aggregate.Aggregate(aggregate.Input{
		Stays:       req.Stays,
		Travelers:   req.Travelers,
		VisaEnabled: req.VisaEnabled,
		Target:      req.Target,
	}, table)
	if err != nil {
		return nil, err
	}

	for _, w := range agg.Warnings {
		logging.Warn("aggregation warning", zap.String("warning", w))
	}

	breakdown, err := markup.Price(agg.NetCost, req.Rule, req.Travelers.PayingPax(), req.AgentOverride)
	if err != nil {
		return nil, err
	}

	q := &Quote{
		Aggregate:      agg,
		Breakdown:      breakdown,
		SuggestedRooms: allocation.RequiredRooms(req.Travelers.Adults, req.Travelers.Children),
	}

	for _, stay := range req.Stays {
		report := allocation.CheckOccupancy(req.Travelers.Adults, req.Travelers.Children, stay.Rooms)
		if !report.Valid {
			logging.Warn("occupancy violation",
				zap.String("stay", stay.Label),
				zap.Strings("violations", report.Violations))
		}
		q.Occupancy = append(q.Occupancy, StayOccupancy{Stay: stay.Label, Report: report})
	}

	return q, nil
}
