package usecase

import (
	"testing"
	"time"

	"fukuro_studio/internal/domain/entities"
	mock_interfaces "fukuro_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)

func fixedClock(ctrl *gomock.Controller, now time.Time) *mock_interfaces.MockIClock {
	c := mock_interfaces.NewMockIClock(ctrl)
	c.EXPECT().Now().Return(now).AnyTimes()
	return c
}

func validQuoteRequest() entities.QuoteRequest {
	return entities.QuoteRequest{
		ClientName:  "Ana",
		ClientEmail: "ana@example.com",
		ProjectName: "Spot Radio",
		Audio: &entities.ServiceRequest{
			Kind:            entities.ServiceAudio,
			Quantity:        1,
			PerItemDuration: entities.NewDuration(1, 30),
		},
		DeliveryDate: testNow.AddDate(0, 0, 5),
	}
}

func assertNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
