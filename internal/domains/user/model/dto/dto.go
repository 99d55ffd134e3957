package dto

import (
	"resort/internal/domains/user/model"
	gDto "resort/shared/dto"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	PhoneNo string  `json:"phoneNo"`
	Salary  float64 `json:"salary"`
	Address string  `json:"address"`
	Role    string  `json:"role"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.PhoneNo = model.PhoneNo
	r.Salary = model.Salary
	r.Address = model.Address
	r.Role = model.Role
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.User) []UserResponse {
	responses := make([]UserResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}

type UpdateUserRequest struct {
	Name    string  `db:"name"     json:"name"    validate:"required,max=100"`
	Email   string  `db:"email"    json:"email"   validate:"required,email,max=100"`
	PhoneNo string  `db:"phone_no" json:"phoneNo" validate:"required,max=20"`
	Salary  float64 `db:"salary"   json:"salary"  validate:"required,gt=0"`
	Address string  `db:"address"  json:"address" validate:"required,max=255"`
	Role    string  `db:"role"     json:"role"    validate:"omitempty,oneof=Admin Receptionist Manager"`
}
