package entities

import "time"

// ServiceKind identifies a billable production service.
type ServiceKind string

const (
	ServiceAudio ServiceKind = "audio"
	ServiceVideo ServiceKind = "video"
)

// ServiceRequest describes one requested service (audio or video) of a quote.
//
// IndividualDurations holds explicit durations for the first N deliverables; the
// remaining Quantity-N deliverables are assumed to last PerItemDuration each.
type ServiceRequest struct {
	Kind                ServiceKind `json:"kind" dynamodbav:"kind"`
	Quantity            int         `json:"quantity" dynamodbav:"quantity"`
	PerItemDuration     Duration    `json:"per_item_duration" dynamodbav:"per_item_duration"`
	IndividualDurations []Duration  `json:"individual_durations,omitempty" dynamodbav:"individual_durations,omitempty"`
	Format              string      `json:"format,omitempty" dynamodbav:"format,omitempty"`
	Resolution          string      `json:"resolution,omitempty" dynamodbav:"resolution,omitempty"`
}

// QuoteRequest is the complete pricing input gathered from the form or the chat.
//
// DeliveryDate is a calendar date (time of day is ignored); the zero value means
// no delivery date was given.
type QuoteRequest struct {
	ClientName        string          `json:"client_name,omitempty" dynamodbav:"client_name,omitempty"`
	ClientEmail       string          `json:"client_email,omitempty" dynamodbav:"client_email,omitempty"`
	ProjectName       string          `json:"project_name" dynamodbav:"project_name"`
	IsExistingProject bool            `json:"is_existing_project" dynamodbav:"is_existing_project"`
	Audio             *ServiceRequest `json:"audio,omitempty" dynamodbav:"audio,omitempty"`
	Video             *ServiceRequest `json:"video,omitempty" dynamodbav:"video,omitempty"`
	DeliveryDate      time.Time       `json:"delivery_date" dynamodbav:"delivery_date"`
	Brief             string          `json:"brief,omitempty" dynamodbav:"brief,omitempty"`
	AssetsLink        string          `json:"assets_link,omitempty" dynamodbav:"assets_link,omitempty"`
}

// Services returns the requested services in a stable order (audio, video).
func (r QuoteRequest) Services() []ServiceRequest {
	out := make([]ServiceRequest, 0, 2)
	if r.Audio != nil {
		out = append(out, *r.Audio)
	}
	if r.Video != nil {
		out = append(out, *r.Video)
	}
	return out
}

// QuoteBreakdown is the derived price of a QuoteRequest.
//
// Invariants: Subtotal = BaseFee + AudioFee + VideoFee, Total = Subtotal + UrgencyFee,
// UrgencyFee is zero unless HasUrgency.
type QuoteBreakdown struct {
	AudioFee       float64 `json:"audio_fee" dynamodbav:"audio_fee"`
	VideoFee       float64 `json:"video_fee" dynamodbav:"video_fee"`
	BaseFee        float64 `json:"base_fee" dynamodbav:"base_fee"`
	Subtotal       float64 `json:"subtotal" dynamodbav:"subtotal"`
	UrgencyFee     float64 `json:"urgency_fee" dynamodbav:"urgency_fee"`
	UrgencyPercent float64 `json:"urgency_percent" dynamodbav:"urgency_percent"`
	HasUrgency     bool    `json:"has_urgency" dynamodbav:"has_urgency"`
	Total          float64 `json:"total" dynamodbav:"total"`
}

// QuoteStatus represents the lifecycle of a submitted quote.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// QuoteSource records which intake channel produced the quote.
type QuoteSource string

const (
	QuoteSourceForm QuoteSource = "form"
	QuoteSourceChat QuoteSource = "chat"
)

// Quote is a submitted quotation persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Monetary representation:
//   - Breakdown is recomputed server side at submission time and never trusted
//     from the client.
type Quote struct {
	ID          string         `json:"id"`
	ProjectID   string         `json:"project_id"`
	Request     QuoteRequest   `json:"request"`
	Breakdown   QuoteBreakdown `json:"breakdown"`
	Status      QuoteStatus    `json:"status"`
	Source      QuoteSource    `json:"source"`
	SubmittedAt time.Time      `json:"submitted_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
