package entities

import "time"

// ServiceFragment is the partially known description of one service, as gathered
// from free-text turns. Nil fields are not yet known.
type ServiceFragment struct {
	Quantity            *int     `json:"quantity,omitempty"`
	Duration            *string  `json:"duration,omitempty"`
	IndividualDurations []string `json:"individual_durations,omitempty"`
	Format              *string  `json:"format,omitempty"`
	Resolution          *string  `json:"resolution,omitempty"`
}

// IntakeData is a partial QuoteRequest accumulated across chat turns.
//
// DeliveryDate uses the YYYY-MM-DD layout.
type IntakeData struct {
	ClientName      *string          `json:"client_name,omitempty"`
	ClientEmail     *string          `json:"client_email,omitempty"`
	ProjectName     *string          `json:"project_name,omitempty"`
	ExistingProject *bool            `json:"existing_project,omitempty"`
	Audio           *ServiceFragment `json:"audio,omitempty"`
	Video           *ServiceFragment `json:"video,omitempty"`
	DeliveryDate    *string          `json:"delivery_date,omitempty"`
	Brief           *string          `json:"brief,omitempty"`
	AssetsLink      *string          `json:"assets_link,omitempty"`
}

// Service returns the fragment for a service kind, or nil.
func (d IntakeData) Service(kind ServiceKind) *ServiceFragment {
	switch kind {
	case ServiceAudio:
		return d.Audio
	case ServiceVideo:
		return d.Video
	default:
		return nil
	}
}

// IntakeState is the position of a chat session in the intake state machine.
type IntakeState string

const (
	IntakeStateCollecting IntakeState = "collecting"
	IntakeStateReady      IntakeState = "ready"
	IntakeStatePriced     IntakeState = "priced"
)

// ConversationTurn is one message exchanged in an intake session.
type ConversationTurn struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

const (
	TurnRoleUser      = "user"
	TurnRoleAssistant = "assistant"
)

// DurationIssue reports a service whose deliverable durations are not yet enough
// to price it.
type DurationIssue struct {
	Service  ServiceKind `json:"service"`
	Expected int         `json:"expected"`
	Have     int         `json:"have"`
	Message  string      `json:"message"`
}

// IntakeSession is a chat conversation that gathers a quote request.
type IntakeSession struct {
	ID             string             `json:"id"`
	State          IntakeState        `json:"state"`
	Data           IntakeData         `json:"data"`
	History        []ConversationTurn `json:"history,omitempty"`
	MissingFields  []string           `json:"missing_fields,omitempty"`
	DurationIssues []DurationIssue    `json:"duration_issues,omitempty"`
	Breakdown      *QuoteBreakdown    `json:"breakdown,omitempty"`
	QuoteID        string             `json:"quote_id,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}
