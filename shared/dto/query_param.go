package dto

import (
	"net/http"
	"resort/shared/constant"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request. With
// `defaultRequest` set, missing page/limit fall back to their defaults;
// otherwise only values present in the request are set, and an unpaginated
// query stays unpaginated.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := queryParams.Get(constant.RequestParamSortDir); strings.ToUpper(sortDir) == SortDirAsc || strings.ToUpper(sortDir) == SortDirDesc {
		q.SortDir = strings.ToUpper(sortDir)
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}
