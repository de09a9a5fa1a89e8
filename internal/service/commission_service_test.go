package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"testing"

	"renderiq-ambassador-be/internal/dto"

	"github.com/stretchr/testify/assert"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func signNotification(orderId, statusCode, grossAmount, serverKey string) string {
	return fmt.Sprintf("%x", sha512.Sum512([]byte(orderId+statusCode+grossAmount+serverKey)))
}

// The signature gate and status filter run before any storage access, so the
// service is constructed without a repository factory here.
func TestHandleMidtransNotificationSignature(t *testing.T) {
	const serverKey = "test-server-key"
	svc := NewCommissionService(nil, nil, nil, serverKey, noopLogger{})

	t.Run("rejects tampered signature", func(t *testing.T) {
		req := &dto.MidtransWebhookRequest{
			OrderId:           "order-1",
			StatusCode:        "200",
			GrossAmount:       "100.00",
			TransactionStatus: "settlement",
			SignatureKey:      "deadbeef",
		}
		err := svc.HandleMidtransNotification(context.Background(), req)
		assert.EqualError(t, err, "invalid signature")
	})

	t.Run("rejects signature computed with wrong key", func(t *testing.T) {
		req := &dto.MidtransWebhookRequest{
			OrderId:           "order-1",
			StatusCode:        "200",
			GrossAmount:       "100.00",
			TransactionStatus: "settlement",
			SignatureKey:      signNotification("order-1", "200", "100.00", "other-key"),
		}
		err := svc.HandleMidtransNotification(context.Background(), req)
		assert.EqualError(t, err, "invalid signature")
	})

	t.Run("ignores non-settled statuses", func(t *testing.T) {
		req := &dto.MidtransWebhookRequest{
			OrderId:           "order-2",
			StatusCode:        "201",
			GrossAmount:       "100.00",
			TransactionStatus: "pending",
			SignatureKey:      signNotification("order-2", "201", "100.00", serverKey),
		}
		err := svc.HandleMidtransNotification(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("ignores capture flagged by fraud review", func(t *testing.T) {
		req := &dto.MidtransWebhookRequest{
			OrderId:           "order-3",
			StatusCode:        "200",
			GrossAmount:       "100.00",
			TransactionStatus: "capture",
			FraudStatus:       "challenge",
			SignatureKey:      signNotification("order-3", "200", "100.00", serverKey),
		}
		err := svc.HandleMidtransNotification(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("rejects settled payload with malformed user id", func(t *testing.T) {
		req := &dto.MidtransWebhookRequest{
			OrderId:           "order-4",
			StatusCode:        "200",
			GrossAmount:       "100.00",
			TransactionStatus: "settlement",
			CustomField1:      "not-a-uuid",
			SignatureKey:      signNotification("order-4", "200", "100.00", serverKey),
		}
		err := svc.HandleMidtransNotification(context.Background(), req)
		assert.ErrorContains(t, err, "invalid user id")
	})

	t.Run("fails closed without a server key", func(t *testing.T) {
		unconfigured := NewCommissionService(nil, nil, nil, "", noopLogger{})
		req := &dto.MidtransWebhookRequest{
			OrderId:           "order-5",
			StatusCode:        "200",
			GrossAmount:       "100.00",
			TransactionStatus: "settlement",
			SignatureKey:      signNotification("order-5", "200", "100.00", ""),
		}
		err := unconfigured.HandleMidtransNotification(context.Background(), req)
		assert.Error(t, err)
	})
}
