// FILE: internal/service/toast_service.go
package service

import (
	"encoding/json"

	"blogmosaic/internal/dto"
	"blogmosaic/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IToastService publishes user-facing toasts onto the in-process bus. The
// websocket consumer picks them up and pushes them to the session's tabs.
// Fire-and-forget: a dropped toast never fails the operation that raised it.
type IToastService interface {
	Success(sessionID uuid.UUID, msg string)
	Error(sessionID uuid.UUID, msg string)
	Warning(sessionID uuid.UUID, msg string)
}

type toastService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewToastService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IToastService {
	return &toastService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

func (s *toastService) Success(sessionID uuid.UUID, msg string) {
	s.publish(sessionID, "success", msg)
}

func (s *toastService) Error(sessionID uuid.UUID, msg string) {
	s.publish(sessionID, "error", msg)
}

func (s *toastService) Warning(sessionID uuid.UUID, msg string) {
	s.publish(sessionID, "warning", msg)
}

func (s *toastService) publish(sessionID uuid.UUID, level, msg string) {
	payload, err := json.Marshal(dto.ToastMessage{
		SessionID: sessionID,
		Level:     level,
		Message:   msg,
	})
	if err != nil {
		s.logger.Error("ToastService", "Failed to marshal toast", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := s.pubSub.Publish(s.topicName, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		s.logger.Error("ToastService", "Failed to publish toast", map[string]interface{}{"error": err.Error()})
	}
}
