package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/shared/constant"
	"resort/shared/dto"
	"resort/shared/logger"
	"slices"
	"strings"
)

var (
	errRequiredFilter = errors.New("required filter")
)

type column struct {
	name  string
	table string
}

// Repository is the generic sqlx-backed store shared by every domain. Writes
// go to the write connection, reads to the read connection. Update and Delete
// report affected rows so callers can distinguish a missing row from a
// successful write without a separate existence query.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	InsertColumns []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	placeholders := []string{}

	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, model)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entity, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &exist, args)

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entity, err)
	}

	return exist, nil
}

func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	selectQuery := repo.getSelectQuery(ctx, columns...)

	query := fmt.Sprintf("SELECT %s FROM %s %s", selectQuery, repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var model T

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entity, err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	selectQuery := repo.getSelectQuery(ctx, columns...)

	var ordering, pagination string

	page := params.Page
	limit := params.Limit

	if page > 0 && limit > 0 {
		args["limit"] = limit
		args["offset"] = (page - 1) * limit

		pagination = "LIMIT :limit OFFSET :offset"
	} else if limit > 0 {
		args["limit"] = limit

		pagination = "LIMIT :limit"
	}

	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s", selectQuery, repo.table, where, ordering, pagination)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var models []T

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s", repo.table, repo.primaryColumn, repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &count, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entity, err)
	}

	return count, nil
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	updateField := []string{}

	for col := range maps.Keys(mod) {
		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
	}

	updateQuery := strings.Join(updateField, ", ")
	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, updateQuery, where)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	maps.Copy(args, mod)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update data (%s): %w", repo.entity, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows (%s): %w", repo.entity, err)
	}

	return affected, nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s %s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to delete data (%s): %w", repo.entity, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows (%s): %w", repo.entity, err)
	}

	return affected, nil
}

func (repo *Repository[T]) getSelectQuery(ctx context.Context, columnsParam ...string) string {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.getSelectQuery", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	columns := []string{}
	for _, col := range repo.columns {
		if len(columnsParam) > 0 && !slices.Contains(columnsParam, col.name) {
			continue
		}

		columns = append(columns, fmt.Sprintf("%s.%s", col.table, col.name))
	}

	return strings.Join(columns, ", ")
}

func (repo *Repository[T]) BuildWhereClause(ctx context.Context, filter dto.FilterGroup) (string, map[string]any) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.BuildWhereClause", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)
		dbTag := field.Tag.Get("db")

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			col, insertCol := getColumns(table, field.Type)
			columns = append(columns, col...)
			insertColumns = append(insertColumns, insertCol...)
		}

		if dbTag == "" {
			continue
		}

		insertColumns = append(insertColumns, dbTag)
		columns = append(columns, column{name: dbTag, table: table})
	}

	return columns, insertColumns
}
