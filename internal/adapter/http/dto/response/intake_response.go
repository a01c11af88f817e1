package response

import (
	"time"

	"fukuro_studio/internal/domain/entities"
)

// IntakeSessionResponse is the chat state returned after every turn. Reply is the
// latest assistant message.
type IntakeSessionResponse struct {
	ID             string                      `json:"id"`
	State          string                      `json:"state"`
	Reply          string                      `json:"reply"`
	Data           entities.IntakeData         `json:"data"`
	MissingFields  []string                    `json:"missing_fields"`
	DurationIssues []entities.DurationIssue    `json:"duration_issues"`
	Breakdown      *BreakdownResponse          `json:"breakdown,omitempty"`
	QuoteID        string                      `json:"quote_id,omitempty"`
	History        []entities.ConversationTurn `json:"history"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

func FromIntakeSession(s entities.IntakeSession) IntakeSessionResponse {
	res := IntakeSessionResponse{
		ID:             s.ID,
		State:          string(s.State),
		Data:           s.Data,
		MissingFields:  s.MissingFields,
		DurationIssues: s.DurationIssues,
		QuoteID:        s.QuoteID,
		History:        s.History,
		UpdatedAt:      s.UpdatedAt,
	}
	if res.MissingFields == nil {
		res.MissingFields = []string{}
	}
	if res.DurationIssues == nil {
		res.DurationIssues = []entities.DurationIssue{}
	}
	if res.History == nil {
		res.History = []entities.ConversationTurn{}
	}
	if s.Breakdown != nil {
		b := FromBreakdown(*s.Breakdown)
		res.Breakdown = &b
	}
	for i := len(s.History) - 1; i >= 0; i-- {
		if s.History[i].Role == entities.TurnRoleAssistant {
			res.Reply = s.History[i].Text
			break
		}
	}
	return res
}
