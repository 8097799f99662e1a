package model

import "fitbook/shared/failure"

var (
	ErrBookPastClass    = failure.BadRequestFromString("cannot book a class that has already started")
	ErrNoSlots          = failure.BadRequestFromString("no slots available for this class")
	ErrDuplicateBooking = failure.BadRequestFromString("client has already booked this class")
)
