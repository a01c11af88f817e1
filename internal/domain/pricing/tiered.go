package pricing

import "fukuro_studio/internal/domain/entities"

// GradualFee prices a single deliverable of totalMinutes: the first minute at
// tier1, every minute after it at tier2. Sub-minute jobs are billed entirely at
// tier1. Non-positive durations cost nothing.
func GradualFee(totalMinutes, tier1, tier2 float64) float64 {
	if totalMinutes <= 0 {
		return 0
	}
	if totalMinutes <= 1.0 {
		return totalMinutes * tier1
	}
	return 1.0*tier1 + (totalMinutes-1.0)*tier2
}

// AggregateServiceFee prices every deliverable of a service independently.
//
// Explicit IndividualDurations are billed one by one; the remaining
// Quantity-len(IndividualDurations) deliverables are each billed at
// PerItemDuration. Durations are never pooled across deliverables, so the first
// minute of every deliverable pays tier1.
func AggregateServiceFee(req entities.ServiceRequest, tier1, tier2 float64) float64 {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	var fee float64
	for _, d := range req.IndividualDurations {
		fee += GradualFee(d.TotalMinutes(), tier1, tier2)
	}

	if remaining := quantity - len(req.IndividualDurations); remaining > 0 {
		fee += GradualFee(req.PerItemDuration.TotalMinutes(), tier1, tier2) * float64(remaining)
	}

	if fee < 0 {
		return 0
	}
	return fee
}
