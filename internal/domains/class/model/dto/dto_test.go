package dto_test

import (
	"fitbook/internal/domains/class/model"
	"fitbook/internal/domains/class/model/dto"
	"fitbook/shared/failure"
	"fitbook/shared/validator"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClassRequest_ToModel(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		dateTime  string
		wantStart time.Time
	}{
		{
			name:      "explicit IST offset",
			dateTime:  "2025-06-16T06:00:00+05:30",
			wantStart: time.Date(2025, 6, 16, 0, 30, 0, 0, time.UTC),
		},
		{
			name:      "no offset is read as IST",
			dateTime:  "2025-06-16T06:00:00",
			wantStart: time.Date(2025, 6, 16, 0, 30, 0, 0, time.UTC),
		},
		{
			name:      "Z is UTC",
			dateTime:  "2025-06-16T06:00:00Z",
			wantStart: time.Date(2025, 6, 16, 6, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateClassRequest{Name: "Yoga", DateTime: tt.dateTime, Instructor: "Asha", AvailableSlots: 15}

			class, err := req.ToModel(now)
			require.NoError(t, err)

			assert.True(t, class.StartTime.Equal(tt.wantStart), "got %s", class.StartTime)
			assert.Equal(t, 15, class.TotalSlots)
			assert.Equal(t, 15, class.AvailableSlots)
			assert.Equal(t, now, class.CreatedAt)
			assert.NoError(t, uuid.Validate(class.ID))
		})
	}
}

func TestCreateClassRequest_Validation(t *testing.T) {
	valid := func() dto.CreateClassRequest {
		return dto.CreateClassRequest{
			Name:           "Morning Yoga",
			DateTime:       "2030-06-16T06:00:00+05:30",
			Instructor:     "Asha",
			AvailableSlots: 20,
		}
	}

	tests := []struct {
		name    string
		mutate  func(req *dto.CreateClassRequest)
		wantMsg string
	}{
		{name: "capacity 1", mutate: func(req *dto.CreateClassRequest) { req.AvailableSlots = 1 }},
		{name: "capacity 100", mutate: func(req *dto.CreateClassRequest) { req.AvailableSlots = 100 }},
		{name: "name of 100 characters", mutate: func(req *dto.CreateClassRequest) { req.Name = strings.Repeat("n", 100) }},
		{
			name:    "capacity 0",
			mutate:  func(req *dto.CreateClassRequest) { req.AvailableSlots = 0 },
			wantMsg: "availableSlots must be greater than or equal to 1",
		},
		{
			name:    "capacity 101",
			mutate:  func(req *dto.CreateClassRequest) { req.AvailableSlots = 101 },
			wantMsg: "availableSlots must be less than or equal to 100",
		},
		{
			name:    "name of 101 characters",
			mutate:  func(req *dto.CreateClassRequest) { req.Name = strings.Repeat("n", 101) },
			wantMsg: "name must be at most 100 characters",
		},
		{
			name:    "instructor of 101 characters",
			mutate:  func(req *dto.CreateClassRequest) { req.Instructor = strings.Repeat("i", 101) },
			wantMsg: "instructor must be at most 100 characters",
		},
		{
			name:    "empty name",
			mutate:  func(req *dto.CreateClassRequest) { req.Name = "" },
			wantMsg: "name is required",
		},
		{
			name:    "blank instructor",
			mutate:  func(req *dto.CreateClassRequest) { req.Instructor = "   " },
			wantMsg: "instructor must not be blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestCreateClassRequest_ToModelInvalidDate(t *testing.T) {
	req := dto.CreateClassRequest{Name: "Yoga", DateTime: "tomorrow", Instructor: "Asha", AvailableSlots: 15}

	_, err := req.ToModel(time.Now())

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestCreateClassRequest_Normalize(t *testing.T) {
	req := dto.CreateClassRequest{Name: "  Yoga ", Instructor: " Asha  ", DateTime: " 2025-06-16T06:00:00 "}
	req.Normalize()

	assert.Equal(t, "Yoga", req.Name)
	assert.Equal(t, "Asha", req.Instructor)
	assert.Equal(t, "2025-06-16T06:00:00", req.DateTime)
}

func TestClassResponse_FromModel(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	class := model.Class{
		ID:             "c-1",
		Name:           "Yoga",
		StartTime:      time.Date(2025, 6, 16, 0, 30, 0, 0, time.UTC),
		Instructor:     "Asha",
		TotalSlots:     20,
		AvailableSlots: 7,
	}

	var res dto.ClassResponse
	res.FromModel(class, kolkata)

	assert.Equal(t, "2025-06-16T06:00:00+05:30", res.DateTime)
	assert.Equal(t, 7, res.AvailableSlots)
	assert.Equal(t, 20, res.TotalSlots)

	res.FromModel(class, time.UTC)
	assert.Equal(t, "2025-06-16T00:30:00Z", res.DateTime)
}

func TestGetClassesResponse_FromModels(t *testing.T) {
	classes := []model.Class{{ID: "a"}, {ID: "b"}}

	var res dto.GetClassesResponse
	res.FromModels(classes, 12, 5, time.UTC)

	assert.Len(t, res.Classes, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, "UTC", res.Timezone)
}

func TestUpcomingSnapshot_Upcoming(t *testing.T) {
	asOf := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	snapshot := dto.UpcomingSnapshot{
		Classes: []model.Class{
			{ID: "started", StartTime: asOf.Add(-time.Minute)},
			{ID: "now", StartTime: asOf},
			{ID: "later", StartTime: asOf.Add(time.Hour)},
		},
		Total: 10,
	}

	classes, total := snapshot.Upcoming(asOf)

	require.Len(t, classes, 1)
	assert.Equal(t, "later", classes[0].ID)
	assert.Equal(t, 8, total)
}
