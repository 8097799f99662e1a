package dto

import (
	"fitbook/internal/domains/booking/model"
	"fitbook/shared"
	gModel "fitbook/shared/model"
	"fitbook/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookClassRequest struct {
	ClassID     string `json:"class_id"     validate:"required"`
	ClientName  string `json:"client_name"  validate:"required,notblank,max=100"`
	ClientEmail string `json:"client_email" validate:"required,email,max=254"`
}

func (b *BookClassRequest) Normalize() {
	b.ClassID = strings.TrimSpace(b.ClassID)
	b.ClientName = strings.TrimSpace(b.ClientName)
	b.ClientEmail = shared.NormalizeEmail(b.ClientEmail)
}

func (b *BookClassRequest) ToModel(now time.Time) model.Booking {
	return model.Booking{
		ID:          uuid.NewString(),
		ClassID:     b.ClassID,
		ClientName:  b.ClientName,
		ClientEmail: shared.NormalizeEmail(b.ClientEmail),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type BookingResponse struct {
	ID            string `json:"id"`
	ClassID       string `json:"class_id"`
	ClassName     string `json:"class_name"`
	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	BookingTime   string `json:"booking_time"`
	ClassDateTime string `json:"class_datetime"`
}

// FromModel renders both instants in loc.
func (r *BookingResponse) FromModel(detail model.BookingDetail, loc *time.Location) {
	r.ID = detail.ID
	r.ClassID = detail.ClassID
	r.ClassName = detail.ClassName
	r.ClientName = detail.ClientName
	r.ClientEmail = detail.ClientEmail
	r.BookingTime = timezone.FromUTC(detail.CreatedAt, loc)
	r.ClassDateTime = timezone.FromUTC(detail.ClassStartTime, loc)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Timezone  string            `json:"timezone"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(details []model.BookingDetail, totalData, limit int, loc *time.Location) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Timezone = loc.String()

	r.Bookings = make([]BookingResponse, len(details))
	for i, detail := range details {
		r.Bookings[i].FromModel(detail, loc)
	}
}
