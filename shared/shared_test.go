package shared_test

import (
	"testing"

	"resort/shared"
	"resort/shared/constant"
	"resort/shared/dto"
)

type updatePayload struct {
	Name    string  `db:"name"`
	Email   string  `db:"email"`
	Salary  float64 `db:"salary"`
	Ignored string
}

func TestTransformFields(t *testing.T) {
	tests := []struct {
		name     string
		input    updatePayload
		actor    string
		expected map[string]any
	}{
		{
			name:  "all fields set",
			input: updatePayload{Name: "Alice", Email: "alice@example.com", Salary: 45000},
			actor: "admin-1",
			expected: map[string]any{
				"name":   "Alice",
				"email":  "alice@example.com",
				"salary": float64(45000),
			},
		},
		{
			name:  "zero fields are skipped",
			input: updatePayload{Name: "Bob"},
			actor: "admin-1",
			expected: map[string]any{
				"name": "Bob",
			},
		},
		{
			name:     "untagged fields are skipped",
			input:    updatePayload{Ignored: "secret"},
			actor:    "admin-1",
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.input, tt.actor)

			if result[constant.FieldModifiedBy] != tt.actor {
				t.Errorf("expected %s to be %q, got %v", constant.FieldModifiedBy, tt.actor, result[constant.FieldModifiedBy])
			}
			if _, ok := result[constant.FieldModifiedAt]; !ok {
				t.Errorf("expected %s to be stamped", constant.FieldModifiedAt)
			}

			// two metadata stamps on top of the expected columns
			if len(result) != len(tt.expected)+2 {
				t.Errorf("expected %d fields, got %d: %v", len(tt.expected)+2, len(result), result)
			}

			for field, value := range tt.expected {
				if result[field] != value {
					t.Errorf("expected %s to be %v, got %v", field, value, result[field])
				}
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("booking-1", "id", "bookings")

	where, args := group.GetWhereClause()

	expectedWhere := "(bookings.id = :id)"
	if where != expectedWhere {
		t.Errorf("expected where clause %q, got %q", expectedWhere, where)
	}

	if args["id"] != "booking-1" {
		t.Errorf("expected arg id to be booking-1, got %v", args["id"])
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			parts:    []string{"bookings"},
			expected: "bookings",
		},
		{
			name:     "multiple parts",
			parts:    []string{"bookings", "booking-1"},
			expected: "bookings:booking-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "booking_status",
				Value:    "Confirmed",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
		},
	}

	first := shared.BuildCacheKeyWithQuery("bookings", params, filter)
	second := shared.BuildCacheKeyWithQuery("bookings", params, filter)

	if first != second {
		t.Errorf("expected identical inputs to produce identical keys, got %q and %q", first, second)
	}

	otherParams := dto.QueryParams{Page: 3, Limit: 10}
	third := shared.BuildCacheKeyWithQuery("bookings", otherParams, filter)

	if first == third {
		t.Errorf("expected different query params to produce different keys, both were %q", first)
	}
}
