package service

import (
	"context"
	"fmt"
	"resort/config"
	"resort/infras/otel"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/model/dto"
	"resort/internal/domains/booking/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) ([]dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == constant.Empty {
		actor = constant.ActorGuest
	}

	booking, err := req.ToModel(actor)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if booking.CheckOutDate.Before(booking.CheckInDate) {
		return res, failure.BadRequestFromString("check-out date cannot precede check-in date") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	updatedFields, err := req.ToFields()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking update request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	updatedFields[constant.FieldModifiedAt] = time.Now().UTC()
	updatedFields[constant.FieldModifiedBy] = actor

	affected, err := s.repo.Update(ctx, updatedFields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound("booking") // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to read back updated booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking") // nolint:wrapcheck
	}

	affected, err := s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return res, fmt.Errorf("failed to delete booking: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound("booking") // nolint:wrapcheck
	}

	res.FromModel(booking)

	s.invalidate(ctx, id)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()
}
