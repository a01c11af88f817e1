package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"fukuro_studio/internal/infrastructure/resilience"
	"fukuro_studio/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const serviceName = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// paymentCreator is the subset of payment.Client the gateway calls.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

type errorCounter interface {
	IncrExternalError(service string)
}

// MercadoPagoGateway creates payments through the Mercado Pago SDK. Payments are
// not retried; the breaker stops calls while the provider keeps failing.
type MercadoPagoGateway struct {
	client  paymentCreator
	breaker *gobreaker.CircuitBreaker
	errors  errorCounter
	log     *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, counter errorCounter, log *zap.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if accessToken == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return newGateway(payment.NewClient(cfg), counter, log), nil
}

func newGateway(client paymentCreator, counter errorCounter, log *zap.Logger) *MercadoPagoGateway {
	return &MercadoPagoGateway{
		client:  client,
		breaker: resilience.NewCircuitBreaker("mercadopago-payments"),
		errors:  counter,
		log:     log,
	}
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Info("[payment][gateway] create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Warn("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return "", "", nil, fmt.Errorf("decode payment request: %w", err)
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.client.Create(ctx, req)
	})
	if err != nil {
		if g.errors != nil {
			g.errors.IncrExternalError(serviceName)
		}
		g.log.Error("[payment][gateway] sdk create failed", zap.String("breaker", g.breaker.State().String()), zap.Error(err))
		return "", "", nil, err
	}
	resp := result.(*payment.Response)

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error("[payment][gateway] response marshal failed", zap.Error(err))
		return "", "", nil, err
	}
	id := strconv.Itoa(resp.ID)
	g.log.Info("[payment][gateway] create success", zap.String("provider_payment_id", id), zap.String("provider_status", resp.Status))

	return id, resp.Status, b, nil
}
