package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"resort/shared/constant"
	"resort/shared/dto"
	"resort/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := createdAt.Format(constant.DateFormat)
	expectedModifiedAt := modifiedAt.Format(constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "check_in_date",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "check_in_date",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative page and limit",
			queryParams: map[string]string{
				"page":  "-1",
				"limit": "-5",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "sort direction is upper-cased",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
		{
			name: "invalid sort direction is ignored",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{}
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}

			r := &http.Request{URL: &url.URL{RawQuery: query.Encode()}}

			var params dto.QueryParams
			params.FromRequest(r, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name: "equality with table prefix",
			filter: dto.Filter{
				Field:    "booking_status",
				Value:    "Confirmed",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			expectedSQL:  "bookings.booking_status = :booking_status",
			expectedArgs: map[string]any{"booking_status": "Confirmed"},
		},
		{
			name: "equality with custom arg name",
			filter: dto.Filter{
				ArgName:  "status_filter",
				Field:    "booking_status",
				Value:    "Pending",
				Operator: dto.FilterOperatorEq,
			},
			expectedSQL:  "booking_status = :status_filter",
			expectedArgs: map[string]any{"status_filter": "Pending"},
		},
		{
			name: "like wraps value in wildcards",
			filter: dto.Filter{
				Field:    "client_name",
				Value:    "smith",
				Operator: dto.FilterOperatorLike,
			},
			expectedSQL:  "LOWER(client_name) LIKE LOWER(:client_name) ",
			expectedArgs: map[string]any{"client_name": "%smith%"},
		},
		{
			name: "in expands slice values",
			filter: dto.Filter{
				Field:    "role",
				Value:    []string{"Admin", "Manager"},
				Operator: dto.FilterOperatorIn,
			},
			expectedSQL:  "role IN (:role_0, :role_1) ",
			expectedArgs: map[string]any{"role_0": "Admin", "role_1": "Manager"},
		},
		{
			name: "greater or equal",
			filter: dto.Filter{
				Field:    "check_in_date",
				Value:    "2026-09-01",
				Operator: dto.FilterOperatorGreaterEq,
			},
			expectedSQL:  "check_in_date >= :check_in_date",
			expectedArgs: map[string]any{"check_in_date": "2026-09-01"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "role",
				Value:    "Admin",
				Operator: "between",
			},
			expectedSQL:  "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.GetWhereClause()

			if sql != tt.expectedSQL {
				t.Errorf("expected clause %q, got %q", tt.expectedSQL, sql)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Errorf("expected %d args, got %d: %v", len(tt.expectedArgs), len(args), args)
			}

			for name, value := range tt.expectedArgs {
				if args[name] != value {
					t.Errorf("expected arg %s to be %v, got %v", name, value, args[name])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group yields empty clause", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		sql, args := group.GetWhereClause()

		if sql != "" {
			t.Errorf("expected empty clause, got %q", sql)
		}

		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("filters joined by group operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{
					Field:    "booking_status",
					Value:    "Confirmed",
					Operator: dto.FilterOperatorEq,
				},
				dto.Filter{
					Field:    "payment_status",
					Value:    "Paid",
					Operator: dto.FilterOperatorEq,
				},
			},
		}

		sql, args := group.GetWhereClause()

		expected := "(booking_status = :booking_status AND payment_status = :payment_status)"
		if sql != expected {
			t.Errorf("expected clause %q, got %q", expected, sql)
		}

		if args["booking_status"] != "Confirmed" || args["payment_status"] != "Paid" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("nested group", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{
					Field:    "role",
					Value:    "Receptionist",
					Operator: dto.FilterOperatorEq,
				},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{
							ArgName:  "name_like",
							Field:    "name",
							Value:    "an",
							Operator: dto.FilterOperatorLike,
						},
						dto.Filter{
							ArgName:  "email_like",
							Field:    "email",
							Value:    "an",
							Operator: dto.FilterOperatorLike,
						},
					},
				},
			},
		}

		sql, args := group.GetWhereClause()

		expected := "(role = :role AND (LOWER(name) LIKE LOWER(:name_like)  OR LOWER(email) LIKE LOWER(:email_like) ))"
		if sql != expected {
			t.Errorf("expected clause %q, got %q", expected, sql)
		}

		if len(args) != 3 {
			t.Errorf("expected 3 args, got %d: %v", len(args), args)
		}
	})
}
