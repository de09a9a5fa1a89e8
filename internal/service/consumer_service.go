package service

import (
	"context"
	"encoding/json"
	"log"

	"renderiq-ambassador-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the referral-recorded topic and re-resolves the
// ambassador's volume tier for each event.
type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	tierService IVolumeTierService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	tierService IVolumeTierService,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		tierService: tierService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ReferralRecordedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal referral event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if err := cs.tierService.RecalculateTier(ctx, payload.AmbassadorId); err != nil {
		log.Printf("[ERROR] Tier recalculation failed for %s: %v", payload.AmbassadorId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
