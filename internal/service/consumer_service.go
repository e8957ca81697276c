package service

import (
	"context"
	"encoding/json"

	"sakhi-support-be/internal/dto"
	"sakhi-support-be/internal/pkg/logger"
	"sakhi-support-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains report-created events off the in-process bus and
// notifies the admin mailbox so new reports get eyes without polling.
type consumerService struct {
	pubSub           *gochannel.GoChannel
	topicName        string
	emailService     mailer.IEmailService
	adminNotifyEmail string
	logger           logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	adminNotifyEmail string,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:           pubSub,
		topicName:        topicName,
		emailService:     emailService,
		adminNotifyEmail: adminNotifyEmail,
		logger:           log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.ReportCreatedEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal report event", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite retry.
		msg.Ack()
		return
	}

	cs.logger.Info("ConsumerService", "Report created", map[string]interface{}{
		"report_id": payload.ReportId.String(),
		"subject":   payload.Subject,
	})

	if cs.adminNotifyEmail != "" {
		if err := cs.emailService.SendReportNotice(cs.adminNotifyEmail, payload.Subject, payload.Name); err != nil {
			cs.logger.Warn("ConsumerService", "Failed to send admin notice", map[string]interface{}{
				"report_id": payload.ReportId.String(),
				"error":     err.Error(),
			})
		}
	}

	msg.Ack()
}
