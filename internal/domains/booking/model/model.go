package model

import (
	"resort/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldClientName      = "client_name"
	FieldEmail           = "email"
	FieldPhoneNumber     = "phone_number"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldNumberOfAdults  = "number_of_adults"
	FieldNumberOfKids    = "number_of_kids"
	FieldRoomType        = "room_type"
	FieldFoodPreference  = "food_preference"
	FieldRoomNumber      = "room_number"
	FieldSpecialRequests = "special_requests"
	FieldAmount          = "amount"
	FieldCheckInStatus   = "check_in_status"
	FieldBookingStatus   = "booking_status"
	FieldPaymentStatus   = "payment_status"

	CheckInStatusNotCheckedIn = "NotCheckedIn"
	CheckInStatusCheckedIn    = "CheckedIn"
	CheckInStatusCheckedOut   = "CheckedOut"

	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"

	PaymentStatusUnpaid = "Unpaid"
	PaymentStatusPaid   = "Paid"
)

type Booking struct {
	ID              string    `db:"id"`
	ClientName      string    `db:"client_name"`
	Email           string    `db:"email"`
	PhoneNumber     string    `db:"phone_number"`
	CheckInDate     time.Time `db:"check_in_date"`
	CheckOutDate    time.Time `db:"check_out_date"`
	NumberOfAdults  int       `db:"number_of_adults"`
	NumberOfKids    int       `db:"number_of_kids"`
	RoomType        string    `db:"room_type"`
	FoodPreference  string    `db:"food_preference"`
	RoomNumber      string    `db:"room_number"`
	SpecialRequests *string   `db:"special_requests"`
	Amount          float64   `db:"amount"`
	CheckInStatus   string    `db:"check_in_status"`
	BookingStatus   string    `db:"booking_status"`
	PaymentStatus   string    `db:"payment_status"`
	model.Metadata
}
