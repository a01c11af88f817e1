package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/domain/intake"
	"fukuro_studio/internal/domain/pricing"
	"fukuro_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const intakeGreeting = "Hi! Tell me about your project: its name, whether it is new or existing, " +
	"the audio and video pieces you need with their approximate durations, and when you need them."

var (
	ErrIntakeSessionNotFound  = errors.New("intake session not found")
	ErrInvalidSessionID       = errors.New("invalid intake session id")
	ErrEmptyMessage           = errors.New("message text is required")
	ErrIntakeSessionClosed    = intake.ErrSessionClosed
	ErrIntakeSessionNotPriced = errors.New("intake session has not been priced")
	ErrIntakeAlreadySubmitted = errors.New("intake session already submitted")
	ErrExtractionFailed       = errors.New("extraction failed")
)

// SubmitIntakeCommand completes a priced chat session with the contact details
// the conversation may not have gathered. Non-empty fields override the session.
// ProjectName names the existing project when the chat only said there was one.
type SubmitIntakeCommand struct {
	ProjectName   string
	ClientName    string
	ClientEmail   string
	DeliveryDate  string
	TermsAccepted bool
}

// IIntakeUseCase drives the conversational quote intake.
//
//   - each chat message => ProcessTurn() (extract, reconcile, price when complete)
//   - "start over" => Reset()
//   - confirming the priced quote => Submit()

type IIntakeUseCase interface {
	StartSession(ctx context.Context) (entities.IntakeSession, error)
	ProcessTurn(ctx context.Context, sessionID, text string) (entities.IntakeSession, error)
	Reset(ctx context.Context, sessionID string) (entities.IntakeSession, error)
	Get(ctx context.Context, sessionID string) (entities.IntakeSession, error)
	Submit(ctx context.Context, sessionID string, cmd SubmitIntakeCommand) (entities.Quote, error)
}

type IntakeUseCase struct {
	sessions  interfaces.IIntakeSessionStore
	extractor interfaces.IExtractor
	quotes    IQuoteUseCase
	rates     entities.RateSchedule
	clock     interfaces.IClock
	metrics   interfaces.IMetricsRecorder
	log       *zap.Logger
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(
	sessions interfaces.IIntakeSessionStore,
	extractor interfaces.IExtractor,
	quotes IQuoteUseCase,
	rates entities.RateSchedule,
	clock interfaces.IClock,
	log *zap.Logger,
) *IntakeUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &IntakeUseCase{
		sessions:  sessions,
		extractor: extractor,
		quotes:    quotes,
		rates:     rates,
		clock:     clock,
		metrics:   nopMetrics{},
		log:       log,
	}
}

// WithMetrics attaches a metrics recorder.
func (u *IntakeUseCase) WithMetrics(m interfaces.IMetricsRecorder) *IntakeUseCase {
	if m != nil {
		u.metrics = m
	}
	return u
}

func (u *IntakeUseCase) StartSession(ctx context.Context) (entities.IntakeSession, error) {
	now := u.clock.Now()
	s := intake.NewSession(uuid.NewString(), now.UTC())
	s.History = append(s.History, entities.ConversationTurn{Role: entities.TurnRoleAssistant, Text: intakeGreeting, At: now.UTC()})

	if err := u.sessions.Save(ctx, s); err != nil {
		u.log.Error("[intake][usecase] session save failed", zap.String("session_id", s.ID), zap.Error(err))
		return entities.IntakeSession{}, err
	}
	u.log.Info("[intake][usecase] session started", zap.String("session_id", s.ID))
	return s, nil
}

// ProcessTurn runs one chat message through extraction and reconciliation.
// When the session becomes complete it is priced in the same turn. An
// extraction failure leaves the session untouched and wraps ErrExtractionFailed.
func (u *IntakeUseCase) ProcessTurn(ctx context.Context, sessionID, text string) (entities.IntakeSession, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.IntakeSession{}, ErrEmptyMessage
	}

	s, err := u.Get(ctx, sessionID)
	if err != nil {
		return entities.IntakeSession{}, err
	}
	if s.State != entities.IntakeStateCollecting {
		return entities.IntakeSession{}, ErrIntakeSessionClosed
	}
	if u.extractor == nil {
		return entities.IntakeSession{}, fmt.Errorf("%w: extractor not configured", ErrExtractionFailed)
	}

	fragment, err := u.extractor.Extract(ctx, text, s.History)
	if err != nil {
		u.metrics.IntakeTurn("failed")
		u.log.Warn("[intake][usecase] extraction failed", zap.String("session_id", s.ID), zap.Error(err))
		return entities.IntakeSession{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	now := u.clock.Now()
	if err := intake.ApplyTurn(&s, fragment, now.UTC()); err != nil {
		return entities.IntakeSession{}, err
	}
	s.History = append(s.History, entities.ConversationTurn{Role: entities.TurnRoleUser, Text: text, At: now.UTC()})

	reply := intake.NextPrompt(s.MissingFields, s.DurationIssues)
	if s.State == entities.IntakeStateReady {
		req := intake.ToQuoteRequest(s.Data, now.Location())
		breakdown := pricing.ComputeQuote(req, u.rates, now)
		if err := intake.MarkPriced(&s, breakdown, now.UTC()); err != nil {
			return entities.IntakeSession{}, err
		}
		reply = pricedReply(breakdown, s.Data)
	}
	s.History = append(s.History, entities.ConversationTurn{Role: entities.TurnRoleAssistant, Text: reply, At: now.UTC()})

	if err := u.sessions.Save(ctx, s); err != nil {
		u.log.Error("[intake][usecase] session save failed", zap.String("session_id", s.ID), zap.Error(err))
		return entities.IntakeSession{}, err
	}

	u.metrics.IntakeTurn(string(s.State))
	u.log.Info("[intake][usecase] turn processed",
		zap.String("session_id", s.ID),
		zap.String("state", string(s.State)),
		zap.Strings("missing_fields", s.MissingFields),
		zap.Int("duration_issues", len(s.DurationIssues)))
	return s, nil
}

func (u *IntakeUseCase) Reset(ctx context.Context, sessionID string) (entities.IntakeSession, error) {
	s, err := u.Get(ctx, sessionID)
	if err != nil {
		return entities.IntakeSession{}, err
	}

	now := u.clock.Now().UTC()
	intake.Reset(&s, now)
	s.History = append(s.History, entities.ConversationTurn{Role: entities.TurnRoleAssistant, Text: intakeGreeting, At: now})
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.IntakeSession{}, err
	}
	u.log.Info("[intake][usecase] session reset", zap.String("session_id", s.ID))
	return s, nil
}

func (u *IntakeUseCase) Get(ctx context.Context, sessionID string) (entities.IntakeSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.IntakeSession{}, ErrInvalidSessionID
	}

	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return entities.IntakeSession{}, err
	}
	if s.ID == "" {
		return entities.IntakeSession{}, ErrIntakeSessionNotFound
	}
	return s, nil
}

// Submit persists the quote of a priced session through the quote use case.
func (u *IntakeUseCase) Submit(ctx context.Context, sessionID string, cmd SubmitIntakeCommand) (entities.Quote, error) {
	s, err := u.Get(ctx, sessionID)
	if err != nil {
		return entities.Quote{}, err
	}
	if s.State != entities.IntakeStatePriced {
		return entities.Quote{}, ErrIntakeSessionNotPriced
	}
	if s.QuoteID != "" {
		return entities.Quote{}, ErrIntakeAlreadySubmitted
	}

	contact := intake.Sanitize(entities.IntakeData{
		ProjectName:  &cmd.ProjectName,
		ClientName:   &cmd.ClientName,
		ClientEmail:  &cmd.ClientEmail,
		DeliveryDate: &cmd.DeliveryDate,
	})
	data := intake.Merge(s.Data, contact)
	req := intake.ToQuoteRequest(data, u.clock.Now().Location())

	q, err := u.quotes.Submit(ctx, SubmitQuoteCommand{
		Request:       req,
		TermsAccepted: cmd.TermsAccepted,
		Source:        entities.QuoteSourceChat,
	})
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.clock.Now()
	if s.Breakdown == nil || s.Breakdown.Total != q.Breakdown.Total {
		s.History = append(s.History, entities.ConversationTurn{Role: entities.TurnRoleAssistant, Text: repricedReply(q.Breakdown), At: now.UTC()})
	}
	breakdown := q.Breakdown
	s.Breakdown = &breakdown
	s.Data = data
	s.QuoteID = q.ID
	s.UpdatedAt = now.UTC()
	if err := u.sessions.Save(ctx, s); err != nil {
		u.log.Warn("[intake][usecase] session save after submit failed", zap.String("session_id", s.ID), zap.String("quote_id", q.ID), zap.Error(err))
	}
	return q, nil
}

// repricedReply reports a total that changed at submission, e.g. a delivery
// date given only then that falls in the urgency window.
func repricedReply(b entities.QuoteBreakdown) string {
	msg := fmt.Sprintf("Your quote was registered with an updated total of %s", pricing.FormatMoney(b.Total))
	if b.HasUrgency {
		msg += fmt.Sprintf(" (includes a %.0f%% urgency surcharge)", b.UrgencyPercent*100)
	}
	return msg + "."
}

func pricedReply(b entities.QuoteBreakdown, data entities.IntakeData) string {
	msg := fmt.Sprintf("Your estimated quote is %s", pricing.FormatMoney(b.Total))
	if b.HasUrgency {
		msg += fmt.Sprintf(" (includes a %.0f%% urgency surcharge)", b.UrgencyPercent*100)
	}
	msg += ". Confirm your contact details and accept the terms to submit it."
	if data.ExistingProject != nil && *data.ExistingProject && (data.ProjectName == nil || strings.TrimSpace(*data.ProjectName) == "") {
		msg += " Please also tell us the name of the existing project this work belongs to."
	}
	return msg
}
