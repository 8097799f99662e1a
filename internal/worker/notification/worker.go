// Package notification turns domain events into client notifications.
package notification

import (
	"context"
	"fitbook/config"
	"fitbook/infras/kafka"
	"fitbook/infras/otel"
	bookingModel "fitbook/internal/domains/booking/model"
	classModel "fitbook/internal/domains/class/model"
	"fitbook/shared"
	"fitbook/shared/cache"
	"fitbook/shared/constant"
	"fitbook/shared/timezone"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	cacheKeySent = "notification:sent"
	// Kafka delivers at least once; a booking is confirmed once within this window.
	sentTTLSeconds = 24 * 60 * 60
)

type Notification struct {
	Recipient string
	Subject   string
	Body      string
}

type Sender interface {
	Send(ctx context.Context, notification Notification) error
}

// LogSender writes notifications to the log instead of delivering them.
type LogSender struct{}

func (LogSender) Send(_ context.Context, notification Notification) error {
	log.Info().
		Str("recipient", notification.Recipient).
		Str("subject", notification.Subject).
		Msg(notification.Body)

	return nil
}

func NewLogSender() Sender {
	return LogSender{}
}

type Worker struct {
	cfg    *config.Config
	kafka  kafka.Client
	cache  cache.RedisCache
	sender Sender
	otel   otel.Otel
}

func New(cfg *config.Config, kafka kafka.Client, cache cache.RedisCache, sender Sender, otel otel.Otel) *Worker {
	return &Worker{
		cfg:    cfg,
		kafka:  kafka,
		cache:  cache,
		sender: sender,
		otel:   otel,
	}
}

// Run consumes booking and class events until ctx is done.
func (w *Worker) Run(ctx context.Context) {
	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()

		w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.Topic.BookingCreated, func(msg kafkaGo.Message) {
			if err := w.HandleBookingCreated(context.WithoutCancel(ctx), msg); err != nil {
				log.Error().Err(err).Str("key", string(msg.Key)).Msg("failed to handle booking created event")
			}
		})
	}()

	go func() {
		defer wg.Done()

		w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.Topic.ClassCreated, func(msg kafkaGo.Message) {
			if err := w.HandleClassCreated(context.WithoutCancel(ctx), msg); err != nil {
				log.Error().Err(err).Str("key", string(msg.Key)).Msg("failed to handle class created event")
			}
		})
	}()

	wg.Wait()
}

// Close releases the Kafka connections held by the worker.
func (w *Worker) Close() error {
	if err := w.kafka.Close(); err != nil {
		return fmt.Errorf("failed to close kafka client: %w", err)
	}

	return nil
}

// HandleBookingCreated sends the booking confirmation. Redelivered events are skipped.
func (w *Worker) HandleBookingCreated(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.HandleBookingCreated")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.DecodeKafkaMessage[bookingModel.BookingCreatedEvent](msg)
	if err != nil {
		return fmt.Errorf("failed to decode booking created event: %w", err)
	}

	sentKey := shared.BuildCacheKey(cacheKeySent, event.BookingID)

	var sent bool
	if err := w.cache.Get(ctx, sentKey, &sent); err == nil && sent {
		scope.AddEvent("confirmation already sent")

		return nil
	} else if err != nil && !cache.IsMiss(err) {
		log.Warn().Err(err).Str("booking_id", event.BookingID).Msg("could not check sent confirmations, sending anyway")
	}

	loc := timezone.DisplayLocation()

	notification := Notification{
		Recipient: event.ClientEmail,
		Subject:   "Booking confirmed: " + event.ClassName,
		Body: fmt.Sprintf("Hi %s, your spot in %s on %s is confirmed.",
			event.ClientName, event.ClassName, timezone.FromUTC(event.ClassStartTime, loc)),
	}

	if err = w.sender.Send(ctx, notification); err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}

	if err := w.cache.Save(ctx, sentKey, true, sentTTLSeconds); err != nil {
		log.Warn().Err(err).Str("booking_id", event.BookingID).Msg("failed to mark confirmation as sent")
	}

	return nil
}

// HandleClassCreated records new classes in the log. Nobody is notified yet.
func (w *Worker) HandleClassCreated(ctx context.Context, msg kafkaGo.Message) (err error) {
	_, scope := w.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.HandleClassCreated")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.DecodeKafkaMessage[classModel.ClassCreatedEvent](msg)
	if err != nil {
		return fmt.Errorf("failed to decode class created event: %w", err)
	}

	log.Info().
		Str("class_id", event.ClassID).
		Str("name", event.Name).
		Time("start_time", event.StartTime).
		Int("slots", event.TotalSlots).
		Msg("class scheduled")

	return nil
}
