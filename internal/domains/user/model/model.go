package model

import (
	"resort/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhoneNo = "phone_no"
	FieldSalary  = "salary"
	FieldAddress = "address"
	FieldRole    = "role"
)

type User struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Email    string  `db:"email"`
	Password string  `db:"password"`
	PhoneNo  string  `db:"phone_no"`
	Salary   float64 `db:"salary"`
	Address  string  `db:"address"`
	Role     string  `db:"role"`
	model.Metadata
}
