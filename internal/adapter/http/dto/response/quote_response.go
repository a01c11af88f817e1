package response

import (
	"fmt"
	"time"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/domain/pricing"
)

type ServiceResponse struct {
	Kind                string   `json:"kind"`
	Quantity            int      `json:"quantity"`
	PerItemDuration     string   `json:"per_item_duration"`
	IndividualDurations []string `json:"individual_durations,omitempty"`
	Format              string   `json:"format,omitempty"`
	Resolution          string   `json:"resolution,omitempty"`
}

type BreakdownResponse struct {
	AudioFee       float64 `json:"audio_fee"`
	VideoFee       float64 `json:"video_fee"`
	BaseFee        float64 `json:"base_fee"`
	Subtotal       float64 `json:"subtotal"`
	UrgencyFee     float64 `json:"urgency_fee"`
	UrgencyPercent float64 `json:"urgency_percent"`
	HasUrgency     bool    `json:"has_urgency"`
	Total          float64 `json:"total"`
	TotalFormatted string  `json:"total_formatted"`
}

type QuoteResponse struct {
	ID                string            `json:"id"`
	ProjectID         string            `json:"project_id"`
	Status            string            `json:"status"`
	Source            string            `json:"source"`
	ClientName        string            `json:"client_name"`
	ClientEmail       string            `json:"client_email"`
	ProjectName       string            `json:"project_name"`
	IsExistingProject bool              `json:"is_existing_project"`
	Services          []ServiceResponse `json:"services"`
	DeliveryDate      string            `json:"delivery_date,omitempty"`
	Brief             string            `json:"brief,omitempty"`
	AssetsLink        string            `json:"assets_link,omitempty"`
	Breakdown         BreakdownResponse `json:"breakdown"`
	SubmittedAt       time.Time         `json:"submitted_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

type ReceiptResponse struct {
	QuoteID string `json:"quote_id"`
	Receipt string `json:"receipt"`
}

func FromBreakdown(b entities.QuoteBreakdown) BreakdownResponse {
	return BreakdownResponse{
		AudioFee:       b.AudioFee,
		VideoFee:       b.VideoFee,
		BaseFee:        b.BaseFee,
		Subtotal:       b.Subtotal,
		UrgencyFee:     b.UrgencyFee,
		UrgencyPercent: b.UrgencyPercent,
		HasUrgency:     b.HasUrgency,
		Total:          b.Total,
		TotalFormatted: pricing.FormatMoney(b.Total),
	}
}

func FromQuote(q entities.Quote) QuoteResponse {
	res := QuoteResponse{
		ID:                q.ID,
		ProjectID:         q.ProjectID,
		Status:            string(q.Status),
		Source:            string(q.Source),
		ClientName:        q.Request.ClientName,
		ClientEmail:       q.Request.ClientEmail,
		ProjectName:       q.Request.ProjectName,
		IsExistingProject: q.Request.IsExistingProject,
		Services:          []ServiceResponse{},
		Brief:             q.Request.Brief,
		AssetsLink:        q.Request.AssetsLink,
		Breakdown:         FromBreakdown(q.Breakdown),
		SubmittedAt:       q.SubmittedAt,
		UpdatedAt:         q.UpdatedAt,
	}
	if !q.Request.DeliveryDate.IsZero() {
		res.DeliveryDate = q.Request.DeliveryDate.Format(pricing.DateLayout)
	}
	for _, s := range q.Request.Services() {
		res.Services = append(res.Services, fromService(s))
	}
	return res
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

func fromService(s entities.ServiceRequest) ServiceResponse {
	res := ServiceResponse{
		Kind:            string(s.Kind),
		Quantity:        s.Quantity,
		PerItemDuration: formatDuration(s.PerItemDuration),
		Format:          s.Format,
		Resolution:      s.Resolution,
	}
	for _, d := range s.IndividualDurations {
		res.IndividualDurations = append(res.IndividualDurations, formatDuration(d))
	}
	return res
}

func formatDuration(d entities.Duration) string {
	return fmt.Sprintf("%d:%02d", d.Minutes, d.Seconds)
}
