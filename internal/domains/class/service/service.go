package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fitbook/config"
	"fitbook/infras/kafka"
	"fitbook/infras/otel"
	"fitbook/internal/domains/class/model"
	"fitbook/internal/domains/class/model/dto"
	"fitbook/internal/domains/class/repository"
	"fitbook/shared"
	"fitbook/shared/cache"
	"fitbook/shared/constant"
	gDto "fitbook/shared/dto"
	"fitbook/shared/timezone"
	"fitbook/shared/validator"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const CacheListUpcoming = "class:upcoming"

type Class interface {
	Create(ctx context.Context, req dto.CreateClassRequest, loc *time.Location) (dto.ClassResponse, error)
	ListUpcoming(ctx context.Context, asOf time.Time, params gDto.QueryParams, loc *time.Location) (dto.GetClassesResponse, error)
	Get(ctx context.Context, id string, loc *time.Location) (dto.ClassResponse, error)
}

type serviceImpl struct {
	repo  repository.ClassStore
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.ClassStore, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Class {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		kafka: kafka,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClassRequest, loc *time.Location) (res dto.ClassResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".class.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	class, err := req.ToModel(now)
	if err != nil {
		log.Error().Err(err).Str("dateTime", req.DateTime).Msg("failed to parse class start time")

		return res, err
	}

	if !class.IsUpcoming(now) {
		log.Warn().Time("start_time", class.StartTime).Msg("rejected class in the past")

		return res, model.ErrPastClass
	}

	if err = s.repo.Insert(ctx, class); err != nil {
		log.Error().Err(err).Msg("failed to create class")

		return res, fmt.Errorf("failed to create class: %w", err)
	}

	scope.SetAttribute("class.id", class.ID)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, CacheListUpcoming)
		s.publishCreated(c, class)
	}()

	res.FromModel(class, loc)

	return res, nil
}

// ListUpcoming serves classes starting strictly after asOf. Cached pages are filtered
// again on read, so a class that started within the cache TTL is never returned.
func (s *serviceImpl) ListUpcoming(ctx context.Context, asOf time.Time, params gDto.QueryParams, loc *time.Location) (res dto.GetClassesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".class.ListUpcoming")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(CacheListUpcoming, params, gDto.FilterGroup{})

	var snapshot dto.UpcomingSnapshot

	if err = s.cache.Get(ctx, cacheKey, &snapshot); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for upcoming classes")

		classes, total := snapshot.Upcoming(asOf)
		res.FromModels(classes, total, params.Limit, loc)

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []gDto.Clause{
			gDto.Filter{
				Field:    model.FieldStartTime,
				Operator: gDto.FilterOperatorGreater,
				Value:    asOf.UTC(),
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count upcoming classes")

		return res, fmt.Errorf("failed to count upcoming classes: %w", err)
	}

	classes, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get upcoming classes")

		return res, fmt.Errorf("failed to get upcoming classes: %w", err)
	}

	res.FromModels(classes, total, params.Limit, loc)

	go func() {
		c := context.WithoutCancel(ctx)

		snapshot := dto.UpcomingSnapshot{Classes: classes, Total: total}
		if err := s.cache.Save(c, cacheKey, snapshot, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save upcoming classes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string, loc *time.Location) (res dto.ClassResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".class.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return res, model.ErrClassNotFound
	}

	class, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get class")

		return res, fmt.Errorf("failed to get class: %w", err)
	}

	if class.ID == constant.Empty {
		return res, model.ErrClassNotFound
	}

	res.FromModel(class, loc)

	return res, nil
}

func (s *serviceImpl) publishCreated(ctx context.Context, class model.Class) {
	if !s.cfg.Kafka.Enable {
		return
	}

	message := kafka.Message{Key: class.ID, Value: model.NewClassCreatedEvent(class)}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.ClassCreated, message); err != nil {
		log.Error().Err(err).Str("class_id", class.ID).Msg("failed to publish class created event")
	}
}
