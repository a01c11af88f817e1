package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload for the payment-on-delivery route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.

type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
