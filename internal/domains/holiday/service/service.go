package service

import (
	"context"
	"fmt"
	"resort/config"
	"resort/infras/otel"
	"resort/internal/domains/holiday/model"
	"resort/internal/domains/holiday/model/dto"
	"resort/internal/domains/holiday/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHoliday    = "holiday:get"
	cacheGetAllHoliday = "holiday:gets"
)

type Holiday interface {
	Create(ctx context.Context, req dto.CreateHolidayRequest) (dto.HolidayResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) ([]dto.HolidayResponse, error)
	Get(ctx context.Context, id string) (dto.HolidayResponse, error)
	Update(ctx context.Context, req dto.UpdateHolidayRequest, id string) (dto.HolidayResponse, error)
	Delete(ctx context.Context, id string) (dto.HolidayResponse, error)
}

type serviceImpl struct {
	repo  repository.Holiday
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Holiday, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Holiday {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHolidayRequest) (res dto.HolidayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateHoliday")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	holiday, err := req.ToModel(actor)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse holiday request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if holiday.EndDate.Before(holiday.StartDate) {
		return res, failure.BadRequestFromString("end date cannot precede start date") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, holiday); err != nil {
		log.Error().Err(err).Msg("failed to create holiday")

		return res, fmt.Errorf("failed to create holiday: %w", err)
	}

	res.FromModel(holiday)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHoliday)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res []dto.HolidayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllHolidays")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHoliday, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for holidays")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get holidays")

		return res, fmt.Errorf("failed to get holidays: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save holidays to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HolidayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHoliday")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHoliday, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for holiday")

		return res, nil
	}

	holiday, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get holiday")

		return res, fmt.Errorf("failed to get holiday: %w", err)
	}

	if holiday.ID == constant.Empty {
		return res, failure.NotFound("holiday") // nolint:wrapcheck
	}

	res.FromModel(holiday)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save holiday to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHolidayRequest, id string) (res dto.HolidayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateHoliday")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	updatedFields, err := req.ToFields()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse holiday update request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	updatedFields[constant.FieldModifiedAt] = time.Now().UTC()
	updatedFields[constant.FieldModifiedBy] = actor

	affected, err := s.repo.Update(ctx, updatedFields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update holiday")

		return res, fmt.Errorf("failed to update holiday: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound("holiday") // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	holiday, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to read back updated holiday")

		return res, fmt.Errorf("failed to get holiday: %w", err)
	}

	res.FromModel(holiday)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.HolidayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteHoliday")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	holiday, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get holiday")

		return res, fmt.Errorf("failed to get holiday: %w", err)
	}

	if holiday.ID == constant.Empty {
		return res, failure.NotFound("holiday") // nolint:wrapcheck
	}

	affected, err := s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete holiday")

		return res, fmt.Errorf("failed to delete holiday: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound("holiday") // nolint:wrapcheck
	}

	res.FromModel(holiday)

	s.invalidate(ctx, id)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHoliday, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete holiday from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHoliday)
	}()
}
