package dto

import (
	userModel "resort/internal/domains/user/model"
	"resort/shared/constant"
	gModel "resort/shared/model"
	"time"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name     string  `json:"name"     validate:"required,max=100"`
	Email    string  `json:"email"    validate:"required,email,max=100"`
	Password string  `json:"password" validate:"required,min=8"`
	PhoneNo  string  `json:"phoneNo"  validate:"required,max=20"`
	Salary   float64 `json:"salary"   validate:"required,gt=0"`
	Address  string  `json:"address"  validate:"required,max=255"`
}

// ToUserModel builds the account row. New accounts always start as
// receptionists; promotion goes through the user update endpoint.
func (r *CreateUserRequest) ToUserModel(hashedPassword string) userModel.User {
	now := time.Now().UTC()

	return userModel.User{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Email:    r.Email,
		Password: hashedPassword,
		PhoneNo:  r.PhoneNo,
		Salary:   r.Salary,
		Address:  r.Address,
		Role:     constant.RoleReceptionist,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ActorSignup,
			ModifiedBy: constant.ActorSignup,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}
