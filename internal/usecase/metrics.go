package usecase

import "fukuro_studio/internal/usecase/interfaces"

type nopMetrics struct{}

func (nopMetrics) QuoteSubmitted(string, float64) {}
func (nopMetrics) IntakeTurn(string)              {}

var _ interfaces.IMetricsRecorder = nopMetrics{}
