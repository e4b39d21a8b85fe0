package payment

import (
	"fmt"

	"github.com/y-smart/service-tripplan/internal/domain/route"
)

// Per-leg base fares and discounts for the integrated fare display, in KRW.
const (
	metroBaseFare        = 1450
	busBaseFare          = 1200
	transferDiscount     = 250
	commuterPassDiscount = 400
)

// FareItem is one line of the integrated fare display. Discounts carry a
// negative amount.
type FareItem struct {
	Label     string `json:"label"`
	AmountKRW int    `json:"amount"`
}

// Breakdown is the composed fare for one itinerary.
type Breakdown struct {
	Items    []FareItem `json:"items"`
	TotalKRW int        `json:"total"`
}

// BreakdownFor composes the integrated fare display for an itinerary:
// per-leg base fares, a transfer discount when more than one fared leg is
// involved, and the commuter pass discount on bus/metro legs.
func BreakdownFor(r route.Route) Breakdown {
	var items []FareItem
	faredLegs := 0
	hasTransit := false

	for _, s := range r.Steps {
		switch s.Type {
		case route.StepMetro:
			items = append(items, FareItem{Label: "경전철", AmountKRW: metroBaseFare})
			faredLegs++
			hasTransit = true
		case route.StepBus:
			label := "버스"
			if s.BusNumber != "" {
				label = fmt.Sprintf("버스 %s번", s.BusNumber)
			}
			items = append(items, FareItem{Label: label, AmountKRW: busBaseFare})
			faredLegs++
			hasTransit = true
		case route.StepTaxi:
			items = append(items, FareItem{Label: "택시", AmountKRW: r.Price})
			faredLegs++
		case route.StepShuttle:
			items = append(items, FareItem{Label: "타바용", AmountKRW: r.Price})
			faredLegs++
		}
	}

	if faredLegs > 1 {
		items = append(items, FareItem{Label: "환승 할인", AmountKRW: -transferDiscount})
	}
	if hasTransit {
		items = append(items, FareItem{Label: "처인구 통근패스 할인", AmountKRW: -commuterPassDiscount})
	}

	total := 0
	for _, it := range items {
		total += it.AmountKRW
	}
	return Breakdown{Items: items, TotalKRW: total}
}
