package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/holiday/model"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"
)

type Holiday interface {
	Insert(ctx context.Context, model model.Holiday) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Holiday, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Holiday, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Holiday]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Holiday {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Holiday](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
