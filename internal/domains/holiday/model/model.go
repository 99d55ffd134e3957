package model

import (
	"resort/shared/model"
	"time"
)

const (
	TableName  = "holidays"
	EntityName = "holiday"

	FieldID                 = "id"
	FieldHolidayName        = "holiday_name"
	FieldHolidayDescription = "holiday_description"
	FieldStartDate          = "start_date"
	FieldEndDate            = "end_date"
)

type Holiday struct {
	ID                 string    `db:"id"`
	HolidayName        string    `db:"holiday_name"`
	HolidayDescription *string   `db:"holiday_description"`
	StartDate          time.Time `db:"start_date"`
	EndDate            time.Time `db:"end_date"`
	model.Metadata
}
