package service

import (
	"context"
	"fmt"
	"resort/config"
	"resort/infras/otel"
	"resort/internal/domains/user/model"
	"resort/internal/domains/user/model/dto"
	"resort/internal/domains/user/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser    = "user:get"
	cacheGetAllUser = "user:gets"
)

type User interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) ([]dto.UserResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) (dto.UserResponse, error)
	Delete(ctx context.Context, id string) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res []dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllUsers")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return res, nil
	}

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user") // nolint:wrapcheck
	}

	res.FromModel(user)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	updatedFields := shared.TransformFields(req, actor)

	affected, err := s.repo.Update(ctx, updatedFields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update user")

		return res, fmt.Errorf("failed to update user: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound("user") // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	user, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to read back updated user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	user, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user") // nolint:wrapcheck
	}

	affected, err := s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete user")

		return res, fmt.Errorf("failed to delete user: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound("user") // nolint:wrapcheck
	}

	res.FromModel(user)

	s.invalidate(ctx, id)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetUser, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete user from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllUser)
	}()
}
