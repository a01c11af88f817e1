package response

import (
	"strings"
	"testing"
	"time"

	"fukuro_studio/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:        "q-1",
		ProjectID: "p-1",
		Status:    entities.QuoteStatusPending,
		Source:    entities.QuoteSourceForm,
		Request: entities.QuoteRequest{
			ProjectName: "Spot Radio",
			Audio: &entities.ServiceRequest{
				Kind: entities.ServiceAudio, Quantity: 2,
				PerItemDuration:     entities.Duration{Minutes: 1, Seconds: 5},
				IndividualDurations: []entities.Duration{{Minutes: 0, Seconds: 45}},
			},
			DeliveryDate: time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
		},
		Breakdown:   entities.QuoteBreakdown{AudioFee: 2000, BaseFee: 2000, Subtotal: 4000, Total: 4000},
		SubmittedAt: now,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.Status != "pending" || res.Source != "form" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.DeliveryDate != "2025-01-06" {
		t.Fatalf("unexpected delivery date %q", res.DeliveryDate)
	}
	if len(res.Services) != 1 || res.Services[0].PerItemDuration != "1:05" || res.Services[0].IndividualDurations[0] != "0:45" {
		t.Fatalf("unexpected services: %+v", res.Services)
	}
	if res.Breakdown.Total != 4000 || !strings.Contains(res.Breakdown.TotalFormatted, "MXN") {
		t.Fatalf("unexpected breakdown: %+v", res.Breakdown)
	}
}

func TestFromIntakeSession(t *testing.T) {
	b := entities.QuoteBreakdown{Total: 4200}
	s := entities.IntakeSession{
		ID:    "s-1",
		State: entities.IntakeStatePriced,
		History: []entities.ConversationTurn{
			{Role: entities.TurnRoleAssistant, Text: "first"},
			{Role: entities.TurnRoleUser, Text: "hola"},
			{Role: entities.TurnRoleAssistant, Text: "latest"},
		},
		Breakdown: &b,
	}

	res := FromIntakeSession(s)
	if res.Reply != "latest" || res.State != "priced" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Breakdown == nil || res.Breakdown.Total != 4200 {
		t.Fatalf("unexpected breakdown: %+v", res.Breakdown)
	}
	if res.MissingFields == nil || res.DurationIssues == nil {
		t.Fatalf("lists must serialize as []")
	}
}

func TestFromProject(t *testing.T) {
	p := entities.Project{
		ID:   "p-1",
		Name: "Spot Radio",
		Deliverables: []entities.Deliverable{{
			ID: "d-1", Type: entities.DeliverableTypeFile, Filename: "mix.wav", ObjectKey: "projects/p-1/d-1/mix.wav",
			Comments: []entities.Comment{{ID: "c-1", Timestamp: 65, Text: "más bajo"}},
		}},
	}

	res := FromProject(p)
	if len(res.Links) != 0 || res.Links == nil {
		t.Fatalf("expected empty links list")
	}
	d := res.Deliverables[0]
	if d.MediaKind != "audio" || d.Comments[0].Position != "01:05" {
		t.Fatalf("unexpected deliverable: %+v", d)
	}
}
