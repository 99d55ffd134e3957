package shared

import (
	"context"
	"encoding/json"
	"reflect"
	"resort/shared/cache"
	"resort/shared/constant"
	"resort/shared/dto"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// TransformFields converts the non-zero fields of a struct into a map of
// updated columns, stamping the modification metadata.
func TransformFields(data interface{}, actor string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = time.Now().UTC()
	updatedFields[constant.FieldModifiedBy] = actor

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a cache key prefix with its qualifiers.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a cache key from the query parameters and
// filter applied to a listing, so distinct listings cache independently.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal query params for cache key")
	}

	where, args := filter.GetWhereClause()

	argsJSON, err := json.Marshal(args)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal filter args for cache key")
	}

	return BuildCacheKey(prefix, string(paramsJSON), where, string(argsJSON))
}

// InvalidateCaches clears every cache entry sharing the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterisk); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
