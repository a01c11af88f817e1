package entities

import "fmt"

// Duration is a deliverable length as entered by a client: whole minutes plus
// whole seconds. Constructed values always keep Seconds in [0, 60).
type Duration struct {
	Minutes int `json:"minutes" dynamodbav:"minutes"`
	Seconds int `json:"seconds" dynamodbav:"seconds"`
}

// NewDuration builds a normalized Duration, carrying second overflow into minutes.
// Negative parts are clamped to zero.
func NewDuration(minutes, seconds int) Duration {
	if minutes < 0 {
		minutes = 0
	}
	if seconds < 0 {
		seconds = 0
	}
	return Duration{Minutes: minutes + seconds/60, Seconds: seconds % 60}
}

// TotalMinutes returns the length in fractional minutes.
func (d Duration) TotalMinutes() float64 {
	return float64(d.Minutes) + float64(d.Seconds)/60
}

func (d Duration) IsZero() bool {
	return d.Minutes <= 0 && d.Seconds <= 0
}

func (d Duration) String() string {
	return fmt.Sprintf("%dm %ds", d.Minutes, d.Seconds)
}
