package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fukuro_studio/internal/domain/entities"
	mock_interfaces "fukuro_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// stubQuoteUseCase captures chat submissions.
type stubQuoteUseCase struct {
	IQuoteUseCase
	got       SubmitQuoteCommand
	breakdown entities.QuoteBreakdown
	err       error
}

func (s *stubQuoteUseCase) Submit(_ context.Context, cmd SubmitQuoteCommand) (entities.Quote, error) {
	s.got = cmd
	if s.err != nil {
		return entities.Quote{}, s.err
	}
	return entities.Quote{ID: "q-1", Request: cmd.Request, Source: cmd.Source, Breakdown: s.breakdown}, nil
}

type intakeMocks struct {
	sessions  *mock_interfaces.MockIIntakeSessionStore
	extractor *mock_interfaces.MockIExtractor
	metrics   *mock_interfaces.MockIMetricsRecorder
	quotes    *stubQuoteUseCase
}

func newIntakeUseCase(t *testing.T) (*IntakeUseCase, intakeMocks) {
	ctrl := gomock.NewController(t)
	m := intakeMocks{
		sessions:  mock_interfaces.NewMockIIntakeSessionStore(ctrl),
		extractor: mock_interfaces.NewMockIExtractor(ctrl),
		metrics:   mock_interfaces.NewMockIMetricsRecorder(ctrl),
		quotes:    &stubQuoteUseCase{},
	}
	uc := NewIntakeUseCase(m.sessions, m.extractor, m.quotes, entities.DefaultRateSchedule(), fixedClock(ctrl, testNow), nil).
		WithMetrics(m.metrics)
	return uc, m
}

func ptr[T any](v T) *T { return &v }

func collectingSession() entities.IntakeSession {
	return entities.IntakeSession{
		ID:            "s-1",
		State:         entities.IntakeStateCollecting,
		MissingFields: []string{"project_name", "brief"},
	}
}

func completeFragment() entities.IntakeData {
	return entities.IntakeData{
		ProjectName:  ptr("Spot Radio"),
		Brief:        ptr("spot de 90 segundos"),
		DeliveryDate: ptr("2025-01-06"),
		Audio:        &entities.ServiceFragment{Quantity: ptr(1), Duration: ptr("1:30")},
	}
}

func TestIntakeUseCase_StartSession(t *testing.T) {
	uc, m := newIntakeUseCase(t)
	m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	s, err := uc.StartSession(context.Background())
	assertNoErr(t, err)
	if s.ID == "" || s.State != entities.IntakeStateCollecting {
		t.Fatalf("unexpected session: %+v", s)
	}
	if len(s.History) != 1 || s.History[0].Role != entities.TurnRoleAssistant {
		t.Fatalf("expected greeting turn, got %+v", s.History)
	}
}

func TestIntakeUseCase_ProcessTurn(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		uc, _ := newIntakeUseCase(t)
		if _, err := uc.ProcessTurn(context.Background(), "s-1", "  "); !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		uc, m := newIntakeUseCase(t)
		m.sessions.EXPECT().Get(gomock.Any(), "s-9").Return(entities.IntakeSession{}, nil)
		if _, err := uc.ProcessTurn(context.Background(), "s-9", "hola"); !errors.Is(err, ErrIntakeSessionNotFound) {
			t.Fatalf("expected ErrIntakeSessionNotFound, got %v", err)
		}
	})

	t.Run("extraction failure leaves session untouched", func(t *testing.T) {
		uc, m := newIntakeUseCase(t)
		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(collectingSession(), nil)
		m.extractor.EXPECT().Extract(gomock.Any(), "hola", gomock.Any()).Return(entities.IntakeData{}, errors.New("timeout"))
		m.metrics.EXPECT().IntakeTurn("failed")

		_, err := uc.ProcessTurn(context.Background(), "s-1", "hola")
		if !errors.Is(err, ErrExtractionFailed) {
			t.Fatalf("expected ErrExtractionFailed, got %v", err)
		}
	})

	t.Run("incomplete turn asks for what is missing", func(t *testing.T) {
		uc, m := newIntakeUseCase(t)
		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(collectingSession(), nil)
		m.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.IntakeData{
			ProjectName: ptr("Spot Radio"),
			Audio:       &entities.ServiceFragment{Quantity: ptr(3)},
		}, nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.metrics.EXPECT().IntakeTurn("collecting")

		s, err := uc.ProcessTurn(context.Background(), "s-1", "un proyecto con 3 audios")
		assertNoErr(t, err)
		if s.State != entities.IntakeStateCollecting {
			t.Fatalf("expected collecting, got %s", s.State)
		}
		if len(s.MissingFields) != 1 || s.MissingFields[0] != "brief" || len(s.DurationIssues) != 1 {
			t.Fatalf("unexpected gaps: %v %+v", s.MissingFields, s.DurationIssues)
		}
		reply := s.History[len(s.History)-1]
		if reply.Role != entities.TurnRoleAssistant || !strings.Contains(reply.Text, "each of the 3 items") {
			t.Fatalf("unexpected reply: %+v", reply)
		}
	})

	t.Run("complete turn is priced", func(t *testing.T) {
		uc, m := newIntakeUseCase(t)
		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(collectingSession(), nil)
		m.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return(completeFragment(), nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.metrics.EXPECT().IntakeTurn("priced")

		s, err := uc.ProcessTurn(context.Background(), "s-1", "todo listo")
		assertNoErr(t, err)
		if s.State != entities.IntakeStatePriced || s.Breakdown == nil {
			t.Fatalf("expected priced session, got %+v", s)
		}
		if s.Breakdown.Total != 4200 {
			t.Fatalf("expected total 4200, got %v", s.Breakdown.Total)
		}
		if len(s.History) != 2 || !strings.Contains(s.History[1].Text, "200.00 MXN") {
			t.Fatalf("unexpected history: %+v", s.History)
		}
	})

	t.Run("existing project without a name asks for it", func(t *testing.T) {
		uc, m := newIntakeUseCase(t)
		fragment := completeFragment()
		fragment.ProjectName = nil
		fragment.ExistingProject = ptr(true)
		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(collectingSession(), nil)
		m.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return(fragment, nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.metrics.EXPECT().IntakeTurn("priced")

		s, err := uc.ProcessTurn(context.Background(), "s-1", "es para un proyecto existente")
		assertNoErr(t, err)
		if s.State != entities.IntakeStatePriced {
			t.Fatalf("expected priced session, got %s", s.State)
		}
		if reply := s.History[len(s.History)-1].Text; !strings.Contains(reply, "name of the existing project") {
			t.Fatalf("expected reply to ask for the project name, got %q", reply)
		}
	})

	t.Run("priced session rejects turns", func(t *testing.T) {
		uc, m := newIntakeUseCase(t)
		s := collectingSession()
		s.State = entities.IntakeStatePriced
		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(s, nil)

		if _, err := uc.ProcessTurn(context.Background(), "s-1", "otra cosa"); !errors.Is(err, ErrIntakeSessionClosed) {
			t.Fatalf("expected ErrIntakeSessionClosed, got %v", err)
		}
	})
}

func TestIntakeUseCase_Reset(t *testing.T) {
	uc, m := newIntakeUseCase(t)
	s := collectingSession()
	s.State = entities.IntakeStatePriced
	s.Data = completeFragment()
	s.QuoteID = "q-1"
	m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(s, nil)
	m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.Reset(context.Background(), "s-1")
	assertNoErr(t, err)
	if got.State != entities.IntakeStateCollecting || got.Data.ProjectName != nil || got.QuoteID != "" {
		t.Fatalf("expected cleared session, got %+v", got)
	}
}

func TestIntakeUseCase_Submit(t *testing.T) {
	priced := func() entities.IntakeSession {
		s := collectingSession()
		s.State = entities.IntakeStatePriced
		s.Data = completeFragment()
		s.Breakdown = &entities.QuoteBreakdown{Total: 4200}
		return s
	}

	t.Run("not priced", func(t *testing.T) {
		uc, m := newIntakeUseCase(t)
		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(collectingSession(), nil)
		if _, err := uc.Submit(context.Background(), "s-1", SubmitIntakeCommand{}); !errors.Is(err, ErrIntakeSessionNotPriced) {
			t.Fatalf("expected ErrIntakeSessionNotPriced, got %v", err)
		}
	})

	t.Run("already submitted", func(t *testing.T) {
		uc, m := newIntakeUseCase(t)
		s := priced()
		s.QuoteID = "q-0"
		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(s, nil)
		if _, err := uc.Submit(context.Background(), "s-1", SubmitIntakeCommand{}); !errors.Is(err, ErrIntakeAlreadySubmitted) {
			t.Fatalf("expected ErrIntakeAlreadySubmitted, got %v", err)
		}
	})

	t.Run("submits with contact overrides", func(t *testing.T) {
		uc, m := newIntakeUseCase(t)
		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(priced(), nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.IntakeSession) error {
			if s.QuoteID != "q-1" {
				t.Fatalf("expected quote id stored, got %q", s.QuoteID)
			}
			return nil
		})

		q, err := uc.Submit(context.Background(), "s-1", SubmitIntakeCommand{
			ClientName:    "Ana",
			ClientEmail:   "ana@example.com",
			DeliveryDate:  "",
			TermsAccepted: true,
		})
		assertNoErr(t, err)
		if q.ID != "q-1" {
			t.Fatalf("unexpected quote: %+v", q)
		}
		got := m.quotes.got
		if got.Source != entities.QuoteSourceChat || !got.TermsAccepted {
			t.Fatalf("unexpected command: %+v", got)
		}
		if got.Request.ClientEmail != "ana@example.com" || got.Request.ProjectName != "Spot Radio" {
			t.Fatalf("unexpected request: %+v", got.Request)
		}
		if got.Request.DeliveryDate.Format("2006-01-02") != "2025-01-06" {
			t.Fatalf("blank override must keep session date, got %v", got.Request.DeliveryDate)
		}
	})

	t.Run("existing project named at submit", func(t *testing.T) {
		uc, m := newIntakeUseCase(t)
		s := priced()
		s.Data.ProjectName = nil
		s.Data.ExistingProject = ptr(true)
		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(s, nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.Submit(context.Background(), "s-1", SubmitIntakeCommand{
			ProjectName:   "  Spot Radio ",
			ClientName:    "Ana",
			ClientEmail:   "ana@example.com",
			TermsAccepted: true,
		})
		assertNoErr(t, err)
		got := m.quotes.got.Request
		if got.ProjectName != "Spot Radio" || !got.IsExistingProject {
			t.Fatalf("expected existing project Spot Radio, got %q existing=%v", got.ProjectName, got.IsExistingProject)
		}
	})

	t.Run("urgent delivery date reprices the session", func(t *testing.T) {
		uc, m := newIntakeUseCase(t)
		s := priced()
		s.Data.DeliveryDate = nil
		m.quotes.breakdown = entities.QuoteBreakdown{Subtotal: 4200, HasUrgency: true, UrgencyPercent: 0.4, UrgencyFee: 1680, Total: 5880}
		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(s, nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, saved entities.IntakeSession) error {
			if saved.Breakdown == nil || saved.Breakdown.Total != 5880 {
				t.Fatalf("expected stored breakdown 5880, got %+v", saved.Breakdown)
			}
			last := saved.History[len(saved.History)-1]
			if last.Role != entities.TurnRoleAssistant || !strings.Contains(last.Text, "880.00 MXN") || !strings.Contains(last.Text, "40% urgency") {
				t.Fatalf("expected repricing reply, got %+v", last)
			}
			return nil
		})

		q, err := uc.Submit(context.Background(), "s-1", SubmitIntakeCommand{
			ClientName:    "Ana",
			ClientEmail:   "ana@example.com",
			DeliveryDate:  "2025-01-02",
			TermsAccepted: true,
		})
		assertNoErr(t, err)
		if q.Breakdown.Total != 5880 {
			t.Fatalf("unexpected quote total %v", q.Breakdown.Total)
		}
	})

	t.Run("unchanged total adds no turn", func(t *testing.T) {
		uc, m := newIntakeUseCase(t)
		m.quotes.breakdown = entities.QuoteBreakdown{Total: 4200}
		s := priced()
		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(s, nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, saved entities.IntakeSession) error {
			if len(saved.History) != len(s.History) {
				t.Fatalf("expected no extra turn, got %+v", saved.History)
			}
			return nil
		})

		_, err := uc.Submit(context.Background(), "s-1", SubmitIntakeCommand{TermsAccepted: true})
		assertNoErr(t, err)
	})

	t.Run("quote rejection is returned", func(t *testing.T) {
		uc, m := newIntakeUseCase(t)
		m.quotes.err = ErrTermsNotAccepted
		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(priced(), nil)

		if _, err := uc.Submit(context.Background(), "s-1", SubmitIntakeCommand{}); !errors.Is(err, ErrTermsNotAccepted) {
			t.Fatalf("expected ErrTermsNotAccepted, got %v", err)
		}
	})
}
