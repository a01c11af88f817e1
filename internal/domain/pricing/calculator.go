package pricing

import (
	"strings"
	"time"

	"fukuro_studio/internal/domain/entities"
)

// UrgencyWindowDays is the lead time, in calendar days, below which a delivery
// date pays the urgency surcharge.
const UrgencyWindowDays = 3

// ComputeQuote prices a quote request against a rate schedule.
//
// today is the caller's current time; only its calendar date (in its location)
// matters. The function is pure: identical inputs give identical breakdowns.
func ComputeQuote(req entities.QuoteRequest, schedule entities.RateSchedule, today time.Time) entities.QuoteBreakdown {
	var b entities.QuoteBreakdown

	if req.Audio != nil {
		t1, t2 := schedule.Tiers(entities.ServiceAudio)
		b.AudioFee = AggregateServiceFee(*req.Audio, t1, t2)
	}
	if req.Video != nil {
		t1, t2 := schedule.Tiers(entities.ServiceVideo)
		b.VideoFee = AggregateServiceFee(*req.Video, t1, t2)
	}

	hasService := req.Audio != nil || req.Video != nil
	if hasService && !req.IsExistingProject {
		b.BaseFee = schedule.BaseFee
	}

	b.Subtotal = b.BaseFee + b.AudioFee + b.VideoFee
	b.UrgencyPercent = schedule.UrgencyPercent

	if b.Subtotal > 0 && IsUrgent(req.DeliveryDate, today) {
		b.HasUrgency = true
		b.UrgencyFee = b.Subtotal * schedule.UrgencyPercent
	}

	b.Total = b.Subtotal + b.UrgencyFee
	return b
}

// IsUrgent reports whether delivery falls strictly before midnight of today plus
// UrgencyWindowDays. A zero delivery date is never urgent.
func IsUrgent(delivery, today time.Time) bool {
	if delivery.IsZero() {
		return false
	}
	loc := today.Location()
	y, m, d := today.Date()
	threshold := time.Date(y, m, d, 0, 0, 0, 0, loc).AddDate(0, 0, UrgencyWindowDays)

	dy, dm, dd := delivery.Date()
	due := time.Date(dy, dm, dd, 0, 0, 0, 0, loc)
	return due.Before(threshold)
}

// DateLayout is the wire layout of calendar dates (delivery dates).
const DateLayout = "2006-01-02"

// ParseCalendarDate parses a YYYY-MM-DD date at midnight in loc.
func ParseCalendarDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}
