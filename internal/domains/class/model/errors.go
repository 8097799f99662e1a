package model

import "fitbook/shared/failure"

var (
	ErrClassNotFound = failure.NotFound("class not found")
	ErrPastClass     = failure.UnprocessableEntity("class start time must be in the future")
)
