package dto

import (
	"fitbook/internal/domains/class/model"
	"fitbook/shared"
	"fitbook/shared/failure"
	gModel "fitbook/shared/model"
	"fitbook/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateClassRequest struct {
	Name           string `json:"name" validate:"required,notblank,max=100"`
	DateTime       string `json:"dateTime" validate:"required,iso8601"`
	Instructor     string `json:"instructor" validate:"required,notblank,max=100"`
	AvailableSlots int    `json:"availableSlots" validate:"gte=1,lte=100"`
}

func (c *CreateClassRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Instructor = strings.TrimSpace(c.Instructor)
	c.DateTime = strings.TrimSpace(c.DateTime)
}

// ToModel resolves the start time to UTC. Both slot counters start at the requested capacity.
func (c *CreateClassRequest) ToModel(now time.Time) (model.Class, error) {
	startTime, err := timezone.ToUTC(c.DateTime)
	if err != nil {
		return model.Class{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	return model.Class{
		ID:             uuid.NewString(),
		Name:           c.Name,
		StartTime:      startTime,
		Instructor:     c.Instructor,
		TotalSlots:     c.AvailableSlots,
		AvailableSlots: c.AvailableSlots,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}, nil
}

type ClassResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DateTime       string `json:"dateTime"`
	Instructor     string `json:"instructor"`
	AvailableSlots int    `json:"availableSlots"`
	TotalSlots     int    `json:"totalSlots"`
}

// FromModel renders the start time in loc.
func (r *ClassResponse) FromModel(model model.Class, loc *time.Location) {
	r.ID = model.ID
	r.Name = model.Name
	r.DateTime = timezone.FromUTC(model.StartTime, loc)
	r.Instructor = model.Instructor
	r.AvailableSlots = model.AvailableSlots
	r.TotalSlots = model.TotalSlots
}

type GetClassesResponse struct {
	Classes   []ClassResponse `json:"classes"`
	Timezone  string          `json:"timezone"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetClassesResponse) FromModels(models []model.Class, totalData, limit int, loc *time.Location) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Timezone = loc.String()

	r.Classes = make([]ClassResponse, len(models))
	for i, mod := range models {
		r.Classes[i].FromModel(mod, loc)
	}
}

// UpcomingSnapshot is the cached form of an upcoming-classes page. It keeps instants
// so entries can be filtered again and rendered in any timezone on a cache hit.
type UpcomingSnapshot struct {
	Classes []model.Class `json:"classes"`
	Total   int           `json:"total"`
}

// Upcoming drops entries that are no longer strictly after asOf and adjusts the total accordingly.
func (s UpcomingSnapshot) Upcoming(asOf time.Time) ([]model.Class, int) {
	classes := make([]model.Class, 0, len(s.Classes))

	for _, class := range s.Classes {
		if class.IsUpcoming(asOf) {
			classes = append(classes, class)
		}
	}

	total := s.Total - (len(s.Classes) - len(classes))
	if total < len(classes) {
		total = len(classes)
	}

	return classes, total
}
