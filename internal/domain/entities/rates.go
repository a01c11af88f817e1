package entities

// RateSchedule is the studio tariff used to price a quote.
//
// All monetary values are MXN. Tier1 is the per-minute rate for the first minute of
// each deliverable, Tier2 the discounted rate for every minute after it.
// The schedule is loaded once at startup and passed explicitly to the calculator.
type RateSchedule struct {
	BaseFee        float64 `json:"base_fee" yaml:"base_fee" validate:"gte=0"`
	AudioTier1     float64 `json:"audio_tier1" yaml:"audio_tier1" validate:"gte=0"`
	AudioTier2     float64 `json:"audio_tier2" yaml:"audio_tier2" validate:"gte=0,ltfield=AudioTier1"`
	VideoTier1     float64 `json:"video_tier1" yaml:"video_tier1" validate:"gte=0"`
	VideoTier2     float64 `json:"video_tier2" yaml:"video_tier2" validate:"gte=0,ltfield=VideoTier1"`
	UrgencyPercent float64 `json:"urgency_percent" yaml:"urgency_percent" validate:"gte=0,lte=1"`
}

// DefaultRateSchedule returns the published studio rates.
func DefaultRateSchedule() RateSchedule {
	return RateSchedule{
		BaseFee:        1200,
		AudioTier1:     2400,
		AudioTier2:     1200,
		VideoTier1:     5000,
		VideoTier2:     2500,
		UrgencyPercent: 0.40,
	}
}

// Tiers returns the (tier1, tier2) per-minute rates for a service kind.
func (r RateSchedule) Tiers(kind ServiceKind) (float64, float64) {
	switch kind {
	case ServiceAudio:
		return r.AudioTier1, r.AudioTier2
	case ServiceVideo:
		return r.VideoTier1, r.VideoTier2
	default:
		return 0, 0
	}
}
