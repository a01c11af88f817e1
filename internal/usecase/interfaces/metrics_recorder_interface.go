package interfaces

// IMetricsRecorder receives business counters from the use cases.
type IMetricsRecorder interface {
	QuoteSubmitted(source string, total float64)
	IntakeTurn(outcome string)
}
