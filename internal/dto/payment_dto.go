package dto

type MidtransWebhookRequest struct {
	TransactionStatus string `json:"transaction_status"`
	OrderId           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
	// Signature validation fields
	SignatureKey string `json:"signature_key"`
	StatusCode   string `json:"status_code"`
	GrossAmount  string `json:"gross_amount"`
	Currency     string `json:"currency"`
	// Set at charge time so the webhook can be attributed without a join
	// against the payment gateway.
	CustomField1 string `json:"custom_field1"` // user id
	CustomField2 string `json:"custom_field2"` // subscription id
}
