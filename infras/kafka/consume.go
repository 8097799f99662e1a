package kafka

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// messageReader is the part of *kafkaGo.Reader the consume loop needs.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafkaGo.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkaGo.Message) error
}

// consume runs handler on one message at a time and commits its offset only after handler
// returns. A consumer that dies mid-handler gets the message again, so delivery is at least once.
func consume(ctx context.Context, reader messageReader, topic string, handler func(message kafkaGo.Message)) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if ctx.Err() != nil {
			log.Info().Str("topic", topic).Msg("Consumer context done.")

			return
		}

		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to fetch message from Kafka.")

			select {
			case <-ctx.Done():
				return
			case <-time.After(readBackoff):
			}

			continue
		}

		log.Info().Str("topic", topic).Str("key", string(msg.Key)).Msg("Received message from Kafka.")

		handler(msg)

		// the handled message is committed even if ctx was cancelled while handler ran
		if err := reader.CommitMessages(context.WithoutCancel(ctx), msg); err != nil {
			log.Error().Err(err).Str("topic", topic).Int64("offset", msg.Offset).Msg("Failed to commit Kafka offset.")
		}
	}
}
