package dto

import (
	"resort/internal/domains/holiday/model"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"time"

	"github.com/google/uuid"
)

type CreateHolidayRequest struct {
	HolidayName        string  `json:"holidayName"        validate:"required,max=100"`
	HolidayDescription *string `json:"holidayDescription" validate:"omitempty,max=500"`
	StartDate          string  `json:"startDate"          validate:"required"`
	EndDate            string  `json:"endDate"            validate:"required"`
}

func (c *CreateHolidayRequest) ToModel(user string) (model.Holiday, error) {
	startDate, err := time.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return model.Holiday{}, err
	}

	endDate, err := time.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return model.Holiday{}, err
	}

	now := time.Now().UTC()

	return model.Holiday{
		ID:                 uuid.NewString(),
		HolidayName:        c.HolidayName,
		HolidayDescription: c.HolidayDescription,
		StartDate:          startDate,
		EndDate:            endDate,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateHolidayRequest struct {
	HolidayName        string  `json:"holidayName"        validate:"required,max=100"`
	HolidayDescription *string `json:"holidayDescription" validate:"omitempty,max=500"`
	StartDate          string  `json:"startDate"          validate:"required"`
	EndDate            string  `json:"endDate"            validate:"required"`
}

// ToFields builds the column map for the update statement.
func (u *UpdateHolidayRequest) ToFields() (map[string]any, error) {
	startDate, err := time.Parse(constant.DateOnlyFormat, u.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(constant.DateOnlyFormat, u.EndDate)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		model.FieldHolidayName:        u.HolidayName,
		model.FieldHolidayDescription: u.HolidayDescription,
		model.FieldStartDate:          startDate,
		model.FieldEndDate:            endDate,
	}, nil
}

type HolidayResponse struct {
	ID                 string  `json:"id"`
	HolidayName        string  `json:"holidayName"`
	HolidayDescription *string `json:"holidayDescription"`
	StartDate          string  `json:"startDate"`
	EndDate            string  `json:"endDate"`
	gDto.Metadata
}

func (r *HolidayResponse) FromModel(model model.Holiday) {
	r.ID = model.ID
	r.HolidayName = model.HolidayName
	r.HolidayDescription = model.HolidayDescription
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Holiday) []HolidayResponse {
	responses := make([]HolidayResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
