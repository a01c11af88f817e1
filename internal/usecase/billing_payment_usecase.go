package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentQuoteID          = errors.New("invalid quote_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrQuoteNotAccepted               = errors.New("quote not accepted")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentSettings tunes how payments are sent to Mercado Pago.
//
// In MockMode no provider call is made and every payment is approved. The
// sandbox payer fields only apply to TEST- access tokens.
type PaymentSettings struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IBillingPaymentUseCase charges accepted quotes on delivery.
//
// Requested behavior:
//   - Create a payment for the accepted quote total and persist the provider response.

type IBillingPaymentUseCase interface {
	CreateForQuote(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo      interfaces.IBillingPaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	clock     interfaces.IClock
	settings  PaymentSettings
	log       *zap.Logger
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(
	repo interfaces.IBillingPaymentRepository,
	quoteRepo interfaces.IQuoteRepository,
	gateway interfaces.IPaymentGateway,
	clock interfaces.IClock,
	settings PaymentSettings,
	log *zap.Logger,
) *BillingPaymentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &BillingPaymentUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway, clock: clock, settings: settings, log: log}
}

func (u *BillingPaymentUseCase) CreateForQuote(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	mockMode := u.settings.MockMode
	quoteID = strings.TrimSpace(quoteID)
	u.log.Info("[payment][usecase] create start", zap.String("quote_id", quoteID), zap.Int("payload_len", len(mpPayload)), zap.Bool("mock", mockMode))
	if quoteID == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentQuoteID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			u.log.Warn("[payment][usecase] invalid payload", zap.String("quote_id", quoteID))
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		u.log.Error("[payment][usecase] gateway not configured", zap.String("quote_id", quoteID))
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		u.log.Error("[payment][usecase] failed loading quote", zap.String("quote_id", quoteID), zap.Error(err))
		return entities.BillingPayment{}, err
	}
	if q.ID == "" {
		return entities.BillingPayment{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAccepted {
		u.log.Warn("[payment][usecase] quote not accepted", zap.String("quote_id", quoteID), zap.String("status", string(q.Status)))
		return entities.BillingPayment{}, ErrQuoteNotAccepted
	}
	amount := q.Breakdown.Total

	// external_reference lets Mercado Pago events be reconciled with the quote.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil && reqMap != nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			u.log.Warn("[payment][usecase] missing payment_method_id", zap.String("quote_id", quoteID))
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		if !mockMode {
			u.normalizeSandboxPayerFromUserID(reqMap)
			u.ensurePayerDefaults(reqMap, q.Request.ClientEmail)
			if !hasPayer(reqMap) {
				u.log.Warn("[payment][usecase] missing/invalid payer", zap.String("quote_id", quoteID))
				return entities.BillingPayment{}, ErrInvalidMPPayload
			}
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = quoteID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Fukuro quote %s (%s)", quoteID, q.Request.ProjectName)
		}
		// The source of truth for amount is the stored quote.
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else if !mockMode {
		u.log.Warn("[payment][usecase] payload is not a json object", zap.String("quote_id", quoteID))
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}

	now := u.clock.Now().UTC()
	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		providerPaymentID = strconv.FormatInt(now.UnixNano(), 10)
		providerStatus = "approved"
		mockResp := map[string]any{}
		_ = json.Unmarshal(mpPayload, &mockResp)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = providerStatus
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now.Format("2006-01-02T15:04:05.999999999Z07:00")
		mockResp["external_reference"] = quoteID
		mockResp["transaction_amount"] = amount
		providerResp, err = json.Marshal(mockResp)
		if err != nil {
			return entities.BillingPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			u.log.Error("[payment][usecase] payment gateway failed", zap.String("quote_id", quoteID), zap.Error(err))
			switch {
			case isGatewayCustomerNotFound(err):
				return entities.BillingPayment{}, ErrPaymentGatewayCustomerNotFound
			case isGatewayInvalidUsers(err):
				return entities.BillingPayment{}, ErrPaymentGatewayInvalidUsers
			case isGatewayUnauthorized(err):
				return entities.BillingPayment{}, ErrPaymentGatewayUnauthorized
			case isGatewayBadRequest(err):
				return entities.BillingPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.BillingPayment{}, &entities.ErrExternalService{Service: "mercadopago", Err: err}
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn("[payment][usecase] provider response unmarshal failed", zap.String("quote_id", quoteID), zap.Error(err))
	}

	p := entities.BillingPayment{
		ID:           providerPaymentID,
		QuoteID:      quoteID,
		Amount:       amount,
		Date:         now,
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("[payment][usecase] repository create failed", zap.String("quote_id", quoteID), zap.String("payment_id", p.ID), zap.Error(err))
		return entities.BillingPayment{}, err
	}
	u.log.Info("[payment][usecase] create success",
		zap.String("quote_id", quoteID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.Float64("amount", created.Amount))
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.BillingPayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *BillingPaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.settings.AccessToken), "TEST-")
}

// ensurePayerDefaults fills the payer e-mail when neither id nor e-mail was sent:
// the quote's client e-mail first, then the configured sandbox payer.
func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any, clientEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	switch {
	case u.sandbox() && strings.TrimSpace(u.settings.TestPayerEmail) != "":
		payer["email"] = strings.TrimSpace(u.settings.TestPayerEmail)
	case strings.TrimSpace(clientEmail) != "":
		payer["email"] = strings.TrimSpace(clientEmail)
	case u.sandbox():
		payer["email"] = "test_user_mx@testuser.com"
	}
}

func (u *BillingPaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}

	configuredUserID := strings.TrimSpace(u.settings.TestPayerUserID)
	configuredEmail := strings.TrimSpace(u.settings.TestPayerEmail)
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	u.log.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

