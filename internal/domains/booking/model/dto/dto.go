package dto

import (
	"resort/internal/domains/booking/model"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ClientName      string  `json:"clientName"      validate:"required,max=100"`
	Email           string  `json:"email"           validate:"required,email,max=100"`
	PhoneNumber     string  `json:"phoneNumber"     validate:"required,max=20"`
	CheckInDate     string  `json:"checkInDate"     validate:"required"`
	CheckOutDate    string  `json:"checkOutDate"    validate:"required"`
	NumberOfAdults  *int    `json:"numberOfAdults"  validate:"required,gte=0"`
	NumberOfKids    *int    `json:"numberOfKids"    validate:"required,gte=0"`
	RoomType        string  `json:"roomType"        validate:"required,max=50"`
	FoodPreference  string  `json:"foodPreference"  validate:"required,max=50"`
	RoomNumber      string  `json:"roomNumber"      validate:"required,max=20"`
	SpecialRequests *string `json:"specialRequests" validate:"omitempty,max=500"`
	Amount          float64 `json:"amount"          validate:"required,gt=0"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkInDate, err := time.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOutDate, err := time.Parse(constant.DateOnlyFormat, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	now := time.Now().UTC()

	return model.Booking{
		ID:              uuid.NewString(),
		ClientName:      c.ClientName,
		Email:           c.Email,
		PhoneNumber:     c.PhoneNumber,
		CheckInDate:     checkInDate,
		CheckOutDate:    checkOutDate,
		NumberOfAdults:  *c.NumberOfAdults,
		NumberOfKids:    *c.NumberOfKids,
		RoomType:        c.RoomType,
		FoodPreference:  c.FoodPreference,
		RoomNumber:      c.RoomNumber,
		SpecialRequests: c.SpecialRequests,
		Amount:          c.Amount,
		CheckInStatus:   model.CheckInStatusNotCheckedIn,
		BookingStatus:   model.BookingStatusPending,
		PaymentStatus:   model.PaymentStatusUnpaid,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	ClientName      string  `json:"clientName"      validate:"required,max=100"`
	Email           string  `json:"email"           validate:"required,email,max=100"`
	PhoneNumber     string  `json:"phoneNumber"     validate:"required,max=20"`
	CheckInDate     string  `json:"checkInDate"     validate:"required"`
	CheckOutDate    string  `json:"checkOutDate"    validate:"required"`
	NumberOfAdults  *int    `json:"numberOfAdults"  validate:"required,gte=0"`
	NumberOfKids    *int    `json:"numberOfKids"    validate:"required,gte=0"`
	RoomType        string  `json:"roomType"        validate:"required,max=50"`
	FoodPreference  string  `json:"foodPreference"  validate:"required,max=50"`
	RoomNumber      string  `json:"roomNumber"      validate:"required,max=20"`
	SpecialRequests *string `json:"specialRequests" validate:"omitempty,max=500"`
	Amount          float64 `json:"amount"          validate:"required,gt=0"`
	CheckInStatus   string  `json:"checkInStatus"   validate:"required,oneof=NotCheckedIn CheckedIn CheckedOut"`
	BookingStatus   string  `json:"bookingStatus"   validate:"required,oneof=Pending Confirmed Cancelled"`
	PaymentStatus   string  `json:"paymentStatus"   validate:"required,oneof=Unpaid Paid"`
}

// ToFields builds the column map for the update statement, parsing the
// date-only strings into timestamps.
func (u *UpdateBookingRequest) ToFields() (map[string]any, error) {
	checkInDate, err := time.Parse(constant.DateOnlyFormat, u.CheckInDate)
	if err != nil {
		return nil, err
	}

	checkOutDate, err := time.Parse(constant.DateOnlyFormat, u.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		model.FieldClientName:      u.ClientName,
		model.FieldEmail:           u.Email,
		model.FieldPhoneNumber:     u.PhoneNumber,
		model.FieldCheckInDate:     checkInDate,
		model.FieldCheckOutDate:    checkOutDate,
		model.FieldNumberOfAdults:  *u.NumberOfAdults,
		model.FieldNumberOfKids:    *u.NumberOfKids,
		model.FieldRoomType:        u.RoomType,
		model.FieldFoodPreference:  u.FoodPreference,
		model.FieldRoomNumber:      u.RoomNumber,
		model.FieldSpecialRequests: u.SpecialRequests,
		model.FieldAmount:          u.Amount,
		model.FieldCheckInStatus:   u.CheckInStatus,
		model.FieldBookingStatus:   u.BookingStatus,
		model.FieldPaymentStatus:   u.PaymentStatus,
	}, nil
}

type BookingResponse struct {
	ID              string  `json:"id"`
	ClientName      string  `json:"clientName"`
	Email           string  `json:"email"`
	PhoneNumber     string  `json:"phoneNumber"`
	CheckInDate     string  `json:"checkInDate"`
	CheckOutDate    string  `json:"checkOutDate"`
	NumberOfAdults  int     `json:"numberOfAdults"`
	NumberOfKids    int     `json:"numberOfKids"`
	RoomType        string  `json:"roomType"`
	FoodPreference  string  `json:"foodPreference"`
	RoomNumber      string  `json:"roomNumber"`
	SpecialRequests *string `json:"specialRequests"`
	Amount          float64 `json:"amount"`
	CheckInStatus   string  `json:"checkInStatus"`
	BookingStatus   string  `json:"bookingStatus"`
	PaymentStatus   string  `json:"paymentStatus"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ClientName = model.ClientName
	r.Email = model.Email
	r.PhoneNumber = model.PhoneNumber
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.NumberOfAdults = model.NumberOfAdults
	r.NumberOfKids = model.NumberOfKids
	r.RoomType = model.RoomType
	r.FoodPreference = model.FoodPreference
	r.RoomNumber = model.RoomNumber
	r.SpecialRequests = model.SpecialRequests
	r.Amount = model.Amount
	r.CheckInStatus = model.CheckInStatus
	r.BookingStatus = model.BookingStatus
	r.PaymentStatus = model.PaymentStatus
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
