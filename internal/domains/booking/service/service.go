package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fitbook/config"
	"fitbook/infras/kafka"
	"fitbook/infras/otel"
	"fitbook/internal/domains/booking/model"
	"fitbook/internal/domains/booking/model/dto"
	"fitbook/internal/domains/booking/repository"
	classModel "fitbook/internal/domains/class/model"
	classRepo "fitbook/internal/domains/class/repository"
	classService "fitbook/internal/domains/class/service"
	"fitbook/shared"
	"fitbook/shared/cache"
	"fitbook/shared/constant"
	gDto "fitbook/shared/dto"
	gRepo "fitbook/shared/repository"
	"fitbook/shared/timezone"
	"fitbook/shared/validator"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	CacheListByEmail = "booking:email"
)

type Booking interface {
	Book(ctx context.Context, req dto.BookClassRequest, loc *time.Location) (dto.BookingResponse, error)
	ListByEmail(ctx context.Context, email string, params gDto.QueryParams, loc *time.Location) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo       repository.BookingStore
	classRepo  classRepo.ClassStore
	transactor gRepo.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	kafka      kafka.Client
	otel       otel.Otel
}

func New(
	repo repository.BookingStore,
	classRepo classRepo.ClassStore,
	transactor gRepo.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		classRepo:  classRepo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		kafka:      kafka,
		otel:       otel,
	}
}

// Book reserves one slot. The class row stays locked from the first read until commit,
// so the checks below and the decrement are serialized per class across all instances.
func (s *serviceImpl) Book(ctx context.Context, req dto.BookClassRequest, loc *time.Location) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if uuid.Validate(req.ClassID) != nil {
		return res, classModel.ErrClassNotFound
	}

	var detail model.BookingDetail

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		class, err := s.classRepo.GetForUpdateTx(ctx, tx, req.ClassID)
		if err != nil {
			return fmt.Errorf("failed to get class: %w", err)
		}

		if class.ID == constant.Empty {
			return classModel.ErrClassNotFound
		}

		now := timezone.Now()

		if !class.IsUpcoming(now) {
			return model.ErrBookPastClass
		}

		if !class.HasSlots() {
			return model.ErrNoSlots
		}

		email := shared.NormalizeEmail(req.ClientEmail)

		exist, err := s.repo.ExistTx(ctx, tx, bookingFilter(class.ID, email))
		if err != nil {
			return fmt.Errorf("failed to check existing booking: %w", err)
		}

		if exist {
			return model.ErrDuplicateBooking
		}

		decremented, err := s.classRepo.DecrementAvailableSlotsTx(ctx, tx, class.ID)
		if err != nil {
			return fmt.Errorf("failed to take slot: %w", err)
		}

		if !decremented {
			return model.ErrNoSlots
		}

		booking := req.ToModel(now)
		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		detail = model.NewBookingDetail(booking, class)

		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("class_id", req.ClassID).Msg("booking rejected")

		return res, err //nolint:wrapcheck
	}

	scope.SetAttribute("booking.id", detail.ID)
	log.Info().Str("booking_id", detail.ID).Str("class_id", detail.ClassID).Msg("class booked")

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, classService.CacheListUpcoming)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(CacheListByEmail, detail.ClientEmail))
		s.publishCreated(c, detail)
	}()

	res.FromModel(detail, loc)

	return res, nil
}

// ListByEmail returns the client's bookings, newest first unless params say otherwise.
func (s *serviceImpl) ListByEmail(ctx context.Context, email string, params gDto.QueryParams, loc *time.Location) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListByEmail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email = shared.NormalizeEmail(email)
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []gDto.Clause{
			gDto.Filter{
				Field:    model.FieldClientEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(CacheListByEmail, email), params, filter)

	var cached struct {
		Details []model.BookingDetail `json:"details"`
		Total   int                   `json:"total"`
	}

	if err = s.cache.Get(ctx, cacheKey, &cached); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings by email")

		res.FromModels(cached.Details, cached.Total, params.Limit, loc)

		return res, nil
	}

	total, err := s.repo.CountDetails(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	details, err := s.repo.GetDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(details, total, params.Limit, loc)

	go func() {
		c := context.WithoutCancel(ctx)

		cached.Details = details
		cached.Total = total

		if err := s.cache.Save(c, cacheKey, cached, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) publishCreated(ctx context.Context, detail model.BookingDetail) {
	if !s.cfg.Kafka.Enable {
		return
	}

	message := kafka.Message{Key: detail.ClassID, Value: model.NewBookingCreatedEvent(detail)}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.BookingCreated, message); err != nil {
		log.Error().Err(err).Str("booking_id", detail.ID).Msg("failed to publish booking created event")
	}
}

func bookingFilter(classID, email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []gDto.Clause{
			gDto.Filter{
				Field:    model.FieldClassID,
				Operator: gDto.FilterOperatorEq,
				Value:    classID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldClientEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}
}
