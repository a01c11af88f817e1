package pricing

import (
	"strings"
	"testing"
	"time"

	"fukuro_studio/internal/domain/entities"
)

func TestFormatReceipt(t *testing.T) {
	today := date(2025, time.January, 1)

	t.Run("new project with urgency", func(t *testing.T) {
		req := audioRequest(today.AddDate(0, 0, 1), false)
		req.ClientName = "Ana"
		req.ClientEmail = "ana@example.com"
		req.Brief = "Spot de 30 segundos"
		req.Audio.Format = "WAV"
		q := entities.Quote{Request: req, Breakdown: ComputeQuote(req, entities.DefaultRateSchedule(), today)}

		out := FormatReceipt(q)
		for _, want := range []string{
			"CLIENTE: Ana",
			"EMAIL: ana@example.com",
			"PROYECTO: Spot Radio",
			"SERVICIOS: Audio",
			"Duración (c/u): 1m 30s",
			"Specs: WAV | N/A",
			"Subtotal Audio: " + FormatMoney(3000),
			"TARIFA BASE (Proyecto): " + FormatMoney(1200),
			"FECHA DE ENTREGA: 2025-01-02",
			"TARIFA DE URGENCIA: +" + FormatMoney(1680) + " (40%)",
			"COTIZACIÓN TOTAL: " + FormatMoney(5880),
			"Spot de 30 segundos",
		} {
			if !strings.Contains(out, want) {
				t.Fatalf("receipt missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("existing project lists individual durations", func(t *testing.T) {
		req := entities.QuoteRequest{
			ProjectName:       "Serie",
			IsExistingProject: true,
			Video: &entities.ServiceRequest{
				Kind:                entities.ServiceVideo,
				Quantity:            2,
				IndividualDurations: []entities.Duration{entities.NewDuration(0, 30), entities.NewDuration(2, 0)},
			},
		}
		q := entities.Quote{Request: req, Breakdown: ComputeQuote(req, entities.DefaultRateSchedule(), today)}

		out := FormatReceipt(q)
		if !strings.Contains(out, "(Proyecto existente)") {
			t.Fatalf("expected existing project note:\n%s", out)
		}
		if !strings.Contains(out, "Duraciones individuales: 0m 30s, 2m 0s") {
			t.Fatalf("expected individual durations:\n%s", out)
		}
		if strings.Contains(out, "Duración (c/u)") {
			t.Fatalf("per-item duration line must be omitted when only individual durations are set:\n%s", out)
		}
		if strings.Contains(out, "TARIFA DE URGENCIA") {
			t.Fatalf("unexpected urgency line:\n%s", out)
		}
		if !strings.Contains(out, "CLIENTE: N/A") || !strings.Contains(out, "FECHA DE ENTREGA: N/A") {
			t.Fatalf("expected N/A placeholders:\n%s", out)
		}
	})
}

func TestFormatMoney(t *testing.T) {
	got := FormatMoney(4200)
	if !strings.HasPrefix(got, "$") || !strings.HasSuffix(got, " MXN") || !strings.Contains(got, "200.00") {
		t.Fatalf("unexpected money format %q", got)
	}
}
