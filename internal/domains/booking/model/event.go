package model

import "time"

// BookingCreatedEvent is published once a reservation commits. The notifier consumes it.
type BookingCreatedEvent struct {
	BookingID      string    `json:"booking_id"`
	ClassID        string    `json:"class_id"`
	ClassName      string    `json:"class_name"`
	ClassStartTime time.Time `json:"class_start_time"`
	ClientName     string    `json:"client_name"`
	ClientEmail    string    `json:"client_email"`
	BookedAt       time.Time `json:"booked_at"`
}

func NewBookingCreatedEvent(detail BookingDetail) BookingCreatedEvent {
	return BookingCreatedEvent{
		BookingID:      detail.ID,
		ClassID:        detail.ClassID,
		ClassName:      detail.ClassName,
		ClassStartTime: detail.ClassStartTime,
		ClientName:     detail.ClientName,
		ClientEmail:    detail.ClientEmail,
		BookedAt:       detail.CreatedAt,
	}
}
