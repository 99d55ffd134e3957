package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/user/model"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
