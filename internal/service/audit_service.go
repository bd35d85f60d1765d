// FILE: internal/service/audit_service.go
package service

import (
	"context"

	"blogmosaic/internal/pkg/logger"
	"blogmosaic/pkg/events"
	pktNats "blogmosaic/pkg/nats"
)

// IAuditService mirrors the event stream into the audit log. It runs on a
// durable consumer, so events emitted while the instance was down are still
// recorded on the next start.
type IAuditService interface {
	Start() error
	Close()
}

type auditService struct {
	subscriber *pktNats.Subscriber
	logger     logger.ILogger
}

func NewAuditService(subscriber *pktNats.Subscriber, log logger.ILogger) IAuditService {
	return &auditService{
		subscriber: subscriber,
		logger:     log,
	}
}

func (s *auditService) Start() error {
	return s.subscriber.Subscribe("blog.>", "blog-audit", func(ctx context.Context, event events.Event) error {
		s.logger.Info("Audit", event.EventType(), event.Payload())
		return nil
	})
}

func (s *auditService) Close() {
	s.subscriber.Close()
}
