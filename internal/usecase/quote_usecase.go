package usecase

import (
	"context"
	"errors"
	"strings"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/domain/pricing"
	"fukuro_studio/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrInvalidProjectID       = errors.New("invalid project id")
	ErrMissingClientName      = errors.New("client name is required")
	ErrInvalidClientEmail     = errors.New("invalid client email")
	ErrMissingProjectName     = errors.New("project name is required")
	ErrMissingDeliveryDate    = errors.New("delivery date is required")
	ErrNoServiceSelected      = errors.New("at least one service is required")
	ErrTermsNotAccepted       = errors.New("terms must be accepted")
	ErrInvalidQuoteTransition = errors.New("quote status transition not allowed")
)

var validate = validator.New()

// SubmitQuoteCommand is a client's request to register a quote.
type SubmitQuoteCommand struct {
	Request       entities.QuoteRequest
	TermsAccepted bool
	Source        entities.QuoteSource
}

// IQuoteUseCase exposes quotation operations.
//
//   - live price preview while the form is filled => Preview()
//   - "Enviar cotización" => Submit()
//   - studio review => Accept() / Reject(); client withdrawal => Cancel()

type IQuoteUseCase interface {
	Preview(ctx context.Context, req entities.QuoteRequest) (entities.QuoteBreakdown, error)
	Submit(ctx context.Context, cmd SubmitQuoteCommand) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.Quote, error)
	Accept(ctx context.Context, id string) (entities.Quote, error)
	Reject(ctx context.Context, id string) (entities.Quote, error)
	Cancel(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	projects interfaces.IProjectRepository
	rates    entities.RateSchedule
	clock    interfaces.IClock
	notifier interfaces.INotifier
	metrics  interfaces.IMetricsRecorder
	log      *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	projects interfaces.IProjectRepository,
	rates entities.RateSchedule,
	clock interfaces.IClock,
	notifier interfaces.INotifier,
	log *zap.Logger,
) *QuoteUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteUseCase{
		repo:     repo,
		projects: projects,
		rates:    rates,
		clock:    clock,
		notifier: notifier,
		metrics:  nopMetrics{},
		log:      log,
	}
}

// WithMetrics attaches a metrics recorder.
func (u *QuoteUseCase) WithMetrics(m interfaces.IMetricsRecorder) *QuoteUseCase {
	if m != nil {
		u.metrics = m
	}
	return u
}

// Preview prices an incomplete request without persisting anything.
func (u *QuoteUseCase) Preview(_ context.Context, req entities.QuoteRequest) (entities.QuoteBreakdown, error) {
	return pricing.ComputeQuote(req, u.rates, u.clock.Now()), nil
}

func (u *QuoteUseCase) Submit(ctx context.Context, cmd SubmitQuoteCommand) (entities.Quote, error) {
	req := normalizeRequest(cmd.Request)
	if err := validateSubmission(req, cmd.TermsAccepted); err != nil {
		return entities.Quote{}, err
	}

	source := cmd.Source
	if source == "" {
		source = entities.QuoteSourceForm
	}
	u.log.Info("[quote][usecase] submit start",
		zap.String("project", req.ProjectName),
		zap.Bool("existing_project", req.IsExistingProject),
		zap.String("source", string(source)))

	if req.IsExistingProject {
		p, err := u.projects.GetByName(ctx, req.ProjectName)
		if err != nil {
			return entities.Quote{}, err
		}
		if p.ID == "" {
			u.log.Warn("[quote][usecase] existing project not found", zap.String("project", req.ProjectName))
			return entities.Quote{}, ErrProjectNotFound
		}
	}

	now := u.clock.Now()
	breakdown := pricing.ComputeQuote(req, u.rates, now)

	project, err := touchProject(ctx, u.projects, req.ProjectName, now.UTC(), true)
	if err != nil {
		u.log.Error("[quote][usecase] project upsert failed", zap.String("project", req.ProjectName), zap.Error(err))
		return entities.Quote{}, err
	}

	q := entities.Quote{
		ID:          uuid.NewString(),
		ProjectID:   project.ID,
		Request:     req,
		Breakdown:   breakdown,
		Status:      entities.QuoteStatusPending,
		Source:      source,
		SubmittedAt: now.UTC(),
		UpdatedAt:   now.UTC(),
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.log.Error("[quote][usecase] repository create failed", zap.String("quote_id", q.ID), zap.Error(err))
		return entities.Quote{}, err
	}

	u.metrics.QuoteSubmitted(string(source), created.Breakdown.Total)
	u.notify(ctx, created)

	u.log.Info("[quote][usecase] submit success",
		zap.String("quote_id", created.ID),
		zap.String("project_id", created.ProjectID),
		zap.Float64("total", created.Breakdown.Total))
	return created, nil
}

// notify is best effort: a failed e-mail never fails a submission.
func (u *QuoteUseCase) notify(ctx context.Context, q entities.Quote) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.NotifyQuoteSubmitted(ctx, q, pricing.FormatReceipt(q)); err != nil {
		u.log.Warn("[quote][usecase] notification failed", zap.String("quote_id", q.ID), zap.Error(err))
	}
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.Quote, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

func (u *QuoteUseCase) Accept(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusAccepted)
}

func (u *QuoteUseCase) Reject(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) Cancel(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusCancelled)
}

// transition moves a pending quote to a final status.
func (u *QuoteUseCase) transition(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.Status != entities.QuoteStatusPending {
		return entities.Quote{}, ErrInvalidQuoteTransition
	}

	updated, err := u.repo.UpdateStatusByID(ctx, current.ID, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.log.Info("[quote][usecase] status updated", zap.String("quote_id", updated.ID), zap.String("status", string(status)))
	return updated, nil
}

func normalizeRequest(req entities.QuoteRequest) entities.QuoteRequest {
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.ClientEmail = strings.TrimSpace(req.ClientEmail)
	req.ProjectName = strings.TrimSpace(req.ProjectName)
	req.Brief = strings.TrimSpace(req.Brief)
	req.AssetsLink = strings.TrimSpace(req.AssetsLink)
	return req
}

func validateSubmission(req entities.QuoteRequest, termsAccepted bool) error {
	switch {
	case req.ClientName == "":
		return ErrMissingClientName
	case validate.Var(req.ClientEmail, "required,email") != nil:
		return ErrInvalidClientEmail
	case req.ProjectName == "":
		return ErrMissingProjectName
	case req.DeliveryDate.IsZero():
		return ErrMissingDeliveryDate
	case req.Audio == nil && req.Video == nil:
		return ErrNoServiceSelected
	case !termsAccepted:
		return ErrTermsNotAccepted
	}
	return nil
}
