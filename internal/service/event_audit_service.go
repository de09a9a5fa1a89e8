package service

import (
	"context"

	"renderiq-ambassador-be/internal/pkg/logger"
	"renderiq-ambassador-be/pkg/events"
	pktNats "renderiq-ambassador-be/pkg/nats"
)

// IEventAuditService writes every outbound domain event to the structured log,
// giving admins a searchable trail of approvals, accruals and payouts.
type IEventAuditService interface {
	Start() error
}

type eventAuditService struct {
	subscriber *pktNats.Subscriber
	logger     logger.ILogger
}

func NewEventAuditService(subscriber *pktNats.Subscriber, sysLogger logger.ILogger) IEventAuditService {
	return &eventAuditService{
		subscriber: subscriber,
		logger:     sysLogger,
	}
}

// Start binds a durable consumer to the whole event subject space. Without a
// NATS connection the audit trail is simply off; the API does not depend on it.
func (s *eventAuditService) Start() error {
	if s.subscriber == nil {
		return nil
	}
	return s.subscriber.Subscribe("events.>", "ambassador-audit", func(ctx context.Context, event events.Event) error {
		s.logger.Info("audit", "Domain event", map[string]interface{}{
			"type":    event.EventType(),
			"payload": event.Payload(),
		})
		return nil
	})
}
