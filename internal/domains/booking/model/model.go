package model

import (
	classModel "fitbook/internal/domains/class/model"
	"fitbook/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldClassID     = "class_id"
	FieldClientName  = "client_name"
	FieldClientEmail = "client_email"
	FieldCreatedAt   = "created_at"
)

type Booking struct {
	ID          string `db:"id"`
	ClassID     string `db:"class_id"`
	ClientName  string `db:"client_name"`
	ClientEmail string `db:"client_email"`
	model.Metadata
}

// BookingDetail is a booking joined with the class it reserves.
type BookingDetail struct {
	ID             string    `db:"id"`
	ClassID        string    `db:"class_id"`
	ClientName     string    `db:"client_name"`
	ClientEmail    string    `db:"client_email"`
	CreatedAt      time.Time `db:"created_at"`
	ClassName      string    `db:"class_name" table:"classes" column:"name"`
	ClassStartTime time.Time `db:"class_start_time" table:"classes" column:"start_time"`
}

func (BookingDetail) GetJoinQuery() string {
	return "JOIN " + classModel.TableName + " ON " + classModel.TableName + "." + classModel.FieldID + " = " + TableName + "." + FieldClassID
}

func NewBookingDetail(booking Booking, class classModel.Class) BookingDetail {
	return BookingDetail{
		ID:             booking.ID,
		ClassID:        booking.ClassID,
		ClientName:     booking.ClientName,
		ClientEmail:    booking.ClientEmail,
		CreatedAt:      booking.CreatedAt,
		ClassName:      class.Name,
		ClassStartTime: class.StartTime,
	}
}
