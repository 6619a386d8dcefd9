package models

// Plan identifies one of the subscription tiers.
type Plan string

const (
	PlanBasic      Plan = "basic"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// Prices in minor currency units.
const (
	PriceBasic      = 0
	PricePro        = 499
	PriceEnterprise = 1499

	PriceExtraStorage    = 199
	PricePrioritySupport = 299
)

// Valid reports whether p names a known tier.
func (p Plan) Valid() bool {
	switch p {
	case PlanBasic, PlanPro, PlanEnterprise:
		return true
	}
	return false
}

// BasePrice returns the tier's base price. Unknown tiers cost nothing,
// matching the server's treatment of absent plan data.
func (p Plan) BasePrice() int {
	switch p {
	case PlanPro:
		return PricePro
	case PlanEnterprise:
		return PriceEnterprise
	default:
		return PriceBasic
	}
}

// PlanSelection is the plan settings shape shared with the server.
type PlanSelection struct {
	Plan            Plan `json:"plan"`
	ExtraStorage    bool `json:"extra_storage"`
	PrioritySupport bool `json:"priority_support"`
}

// Total derives the price of the selection: tier base plus add-ons.
func (s PlanSelection) Total() int {
	total := s.Plan.BasePrice()
	if s.ExtraStorage {
		total += PriceExtraStorage
	}
	if s.PrioritySupport {
		total += PricePrioritySupport
	}
	return total
}
