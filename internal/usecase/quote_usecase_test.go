package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fukuro_studio/internal/domain/entities"
	mock_interfaces "fukuro_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type quoteMocks struct {
	repo     *mock_interfaces.MockIQuoteRepository
	projects *mock_interfaces.MockIProjectRepository
	notifier *mock_interfaces.MockINotifier
	metrics  *mock_interfaces.MockIMetricsRecorder
}

func newQuoteUseCase(t *testing.T) (*QuoteUseCase, quoteMocks) {
	ctrl := gomock.NewController(t)
	m := quoteMocks{
		repo:     mock_interfaces.NewMockIQuoteRepository(ctrl),
		projects: mock_interfaces.NewMockIProjectRepository(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
		metrics:  mock_interfaces.NewMockIMetricsRecorder(ctrl),
	}
	uc := NewQuoteUseCase(m.repo, m.projects, entities.DefaultRateSchedule(), fixedClock(ctrl, testNow), m.notifier, nil).
		WithMetrics(m.metrics)
	return uc, m
}

func TestQuoteUseCase_Submit_Validations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *entities.QuoteRequest)
		terms  bool
		want   error
	}{
		{"missing client name", func(r *entities.QuoteRequest) { r.ClientName = "  " }, true, ErrMissingClientName},
		{"invalid email", func(r *entities.QuoteRequest) { r.ClientEmail = "ana" }, true, ErrInvalidClientEmail},
		{"missing project", func(r *entities.QuoteRequest) { r.ProjectName = "" }, true, ErrMissingProjectName},
		{"missing delivery date", func(r *entities.QuoteRequest) { r.DeliveryDate = time.Time{} }, true, ErrMissingDeliveryDate},
		{"no services", func(r *entities.QuoteRequest) { r.Audio = nil }, true, ErrNoServiceSelected},
		{"terms not accepted", func(r *entities.QuoteRequest) {}, false, ErrTermsNotAccepted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newQuoteUseCase(t)
			req := validQuoteRequest()
			tc.mutate(&req)
			_, err := uc.Submit(context.Background(), SubmitQuoteCommand{Request: req, TermsAccepted: tc.terms})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestQuoteUseCase_Submit(t *testing.T) {
	t.Run("new project is created and quote persisted", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)

		m.projects.EXPECT().GetByName(gomock.Any(), "Spot Radio").Return(entities.Project{}, nil)
		m.projects.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Project) (entities.Project, error) {
			if p.QuoteCount != 1 || p.Name != "Spot Radio" || p.ID == "" {
				t.Fatalf("unexpected project: %+v", p)
			}
			return p, nil
		})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			return q, nil
		})
		m.metrics.EXPECT().QuoteSubmitted("form", 4200.0)
		m.notifier.EXPECT().NotifyQuoteSubmitted(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Quote, receipt string) error {
				if !strings.Contains(receipt, "CLIENTE: Ana") {
					t.Fatalf("receipt missing client: %s", receipt)
				}
				return nil
			})

		q, err := uc.Submit(context.Background(), SubmitQuoteCommand{Request: validQuoteRequest(), TermsAccepted: true})
		assertNoErr(t, err)
		if q.ID == "" || q.ProjectID == "" {
			t.Fatalf("expected ids, got %+v", q)
		}
		if q.Status != entities.QuoteStatusPending || q.Source != entities.QuoteSourceForm {
			t.Fatalf("unexpected status/source: %s/%s", q.Status, q.Source)
		}
		if q.Breakdown.Total != 4200 {
			t.Fatalf("expected total 4200, got %v", q.Breakdown.Total)
		}
	})

	t.Run("existing project waives base fee and increments counter", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		existing := entities.Project{ID: "p-1", Name: "Spot Radio", QuoteCount: 2}

		m.projects.EXPECT().GetByName(gomock.Any(), "Spot Radio").Return(existing, nil).Times(2)
		m.projects.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Project) (entities.Project, error) {
			if p.QuoteCount != 3 {
				t.Fatalf("expected quote count 3, got %d", p.QuoteCount)
			}
			return p, nil
		})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			return q, nil
		})
		m.metrics.EXPECT().QuoteSubmitted("chat", 3000.0)
		m.notifier.EXPECT().NotifyQuoteSubmitted(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		req := validQuoteRequest()
		req.IsExistingProject = true
		q, err := uc.Submit(context.Background(), SubmitQuoteCommand{Request: req, TermsAccepted: true, Source: entities.QuoteSourceChat})
		assertNoErr(t, err)
		if q.ProjectID != "p-1" || q.Breakdown.BaseFee != 0 {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("existing project that does not exist", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.projects.EXPECT().GetByName(gomock.Any(), "Spot Radio").Return(entities.Project{}, nil)

		req := validQuoteRequest()
		req.IsExistingProject = true
		_, err := uc.Submit(context.Background(), SubmitQuoteCommand{Request: req, TermsAccepted: true})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.projects.EXPECT().GetByName(gomock.Any(), gomock.Any()).Return(entities.Project{}, nil)
		m.projects.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Project) (entities.Project, error) {
			return p, nil
		})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))

		_, err := uc.Submit(context.Background(), SubmitQuoteCommand{Request: validQuoteRequest(), TermsAccepted: true})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_Preview(t *testing.T) {
	uc, _ := newQuoteUseCase(t)
	req := validQuoteRequest()
	req.DeliveryDate = testNow.AddDate(0, 0, 1)

	b, err := uc.Preview(context.Background(), req)
	assertNoErr(t, err)
	if !b.HasUrgency || b.Total != 5880 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)
		if _, err := uc.GetByID(context.Background(), "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_Transitions(t *testing.T) {
	t.Run("accept pending quote", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending}, nil)
		m.repo.EXPECT().UpdateStatusByID(gomock.Any(), "q-1", entities.QuoteStatusAccepted).
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAccepted}, nil)

		q, err := uc.Accept(context.Background(), "q-1")
		assertNoErr(t, err)
		if q.Status != entities.QuoteStatusAccepted {
			t.Fatalf("expected accepted, got %s", q.Status)
		}
	})

	t.Run("final status cannot change", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusRejected}, nil)

		if _, err := uc.Cancel(context.Background(), "q-1"); !errors.Is(err, ErrInvalidQuoteTransition) {
			t.Fatalf("expected ErrInvalidQuoteTransition, got %v", err)
		}
	})

	t.Run("reject unknown quote", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{}, nil)

		if _, err := uc.Reject(context.Background(), "q-9"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_ListByProject(t *testing.T) {
	uc, m := newQuoteUseCase(t)
	if _, err := uc.ListByProject(context.Background(), ""); !errors.Is(err, ErrInvalidProjectID) {
		t.Fatalf("expected ErrInvalidProjectID, got %v", err)
	}

	m.repo.EXPECT().ListByProjectID(gomock.Any(), "p-1").Return([]entities.Quote{{ID: "q-1"}}, nil)
	quotes, err := uc.ListByProject(context.Background(), "p-1")
	assertNoErr(t, err)
	if len(quotes) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(quotes))
	}
}
