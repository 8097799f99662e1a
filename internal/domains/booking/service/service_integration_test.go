package service_test

import (
	"context"
	"fitbook/config"
	"fitbook/infras/otel/mocks"
	"fitbook/infras/postgres"
	"fitbook/internal/domains/booking/model"
	"fitbook/internal/domains/booking/model/dto"
	"fitbook/internal/domains/booking/repository"
	"fitbook/internal/domains/booking/service"
	classModel "fitbook/internal/domains/class/model"
	classRepository "fitbook/internal/domains/class/repository"
	gDto "fitbook/shared/dto"
	gRepo "fitbook/shared/repository"
	"fitbook/shared/testutil"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntegrationService(db *postgres.Connection) service.Booking {
	otl := mocks.NewOtel()
	cfg := &config.Config{}

	return service.New(
		repository.New(db, otl),
		classRepository.New(db, otl),
		gRepo.NewTransactor(db, otl),
		cfg,
		testutil.NopCache{},
		nil,
		otl,
	)
}

func availableSlots(t *testing.T, db *postgres.Connection, classID string) int {
	t.Helper()

	var slots int
	require.NoError(t, db.Read.Get(&slots, `SELECT available_slots FROM classes WHERE id = $1`, classID))

	return slots
}

func countBookings(t *testing.T, db *postgres.Connection, classID string) int {
	t.Helper()

	var count int
	require.NoError(t, db.Read.Get(&count, `SELECT COUNT(*) FROM bookings WHERE class_id = $1`, classID))

	return count
}

func TestBook_LastSlotRace(t *testing.T) {
	db := testutil.NewTestConnection(t)
	svc := newIntegrationService(db)

	classID := testutil.InsertClass(t, db.Write, "Sunrise Yoga", time.Now().Add(24*time.Hour), 1)

	var wg sync.WaitGroup

	errs := make([]error, 2)

	for i := range 2 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			req := dto.BookClassRequest{ClassID: classID, ClientName: "Client", ClientEmail: fmt.Sprintf("client%d@example.com", i)}
			_, errs[i] = svc.Book(context.Background(), req, time.UTC)
		}()
	}

	wg.Wait()

	succeeded := 0

	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}

		assert.ErrorIs(t, err, model.ErrNoSlots)
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 0, availableSlots(t, db, classID))
	assert.Equal(t, 1, countBookings(t, db, classID))
}

func TestBook_OversubscribedClass(t *testing.T) {
	const capacity = 5

	db := testutil.NewTestConnection(t)
	svc := newIntegrationService(db)

	classID := testutil.InsertClass(t, db.Write, "Crowded Spin", time.Now().Add(24*time.Hour), capacity)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		noSlots   int
	)

	for i := range capacity * 3 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			req := dto.BookClassRequest{ClassID: classID, ClientName: "Client", ClientEmail: fmt.Sprintf("rider%d@example.com", i)}
			_, err := svc.Book(context.Background(), req, time.UTC)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, model.ErrNoSlots):
				noSlots++
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, capacity*2, noSlots)
	assert.Equal(t, 0, availableSlots(t, db, classID))
	assert.Equal(t, capacity, countBookings(t, db, classID))
}

func TestBook_SameClientTwiceConcurrently(t *testing.T) {
	db := testutil.NewTestConnection(t)
	svc := newIntegrationService(db)

	classID := testutil.InsertClass(t, db.Write, "Kickboxing", time.Now().Add(24*time.Hour), 10)

	var wg sync.WaitGroup

	errs := make([]error, 4)

	for i := range errs {
		wg.Add(1)

		go func() {
			defer wg.Done()

			req := dto.BookClassRequest{ClassID: classID, ClientName: "Rahul", ClientEmail: "Rahul@Example.com"}
			req.Normalize()
			_, errs[i] = svc.Book(context.Background(), req, time.UTC)
		}()
	}

	wg.Wait()

	succeeded := 0

	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}

		assert.ErrorIs(t, err, model.ErrDuplicateBooking)
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 9, availableSlots(t, db, classID))
}

func TestBook_RejectionsLeaveStateUntouched(t *testing.T) {
	db := testutil.NewTestConnection(t)
	svc := newIntegrationService(db)

	past := testutil.InsertClass(t, db.Write, "Finished Barre", time.Now().Add(-time.Hour), 3)

	_, err := svc.Book(context.Background(), dto.BookClassRequest{ClassID: past, ClientName: "A", ClientEmail: "a@example.com"}, time.UTC)
	require.ErrorIs(t, err, model.ErrBookPastClass)
	assert.Equal(t, 3, availableSlots(t, db, past))

	_, err = svc.Book(context.Background(), dto.BookClassRequest{ClassID: "3f2b8c4e-0000-4c1e-8f6b-2a5d9e0c7b13", ClientName: "A", ClientEmail: "a@example.com"}, time.UTC)
	require.ErrorIs(t, err, classModel.ErrClassNotFound)
}

func TestListByEmail_JoinsClassDetails(t *testing.T) {
	db := testutil.NewTestConnection(t)
	svc := newIntegrationService(db)

	startsAt := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	first := testutil.InsertClass(t, db.Write, "Yoga", startsAt, 5)
	second := testutil.InsertClass(t, db.Write, "Spin", startsAt.Add(time.Hour), 5)

	for _, classID := range []string{first, second} {
		_, err := svc.Book(context.Background(), dto.BookClassRequest{ClassID: classID, ClientName: "Priya", ClientEmail: "priya@example.com"}, time.UTC)
		require.NoError(t, err)
	}

	_, err := svc.Book(context.Background(), dto.BookClassRequest{ClassID: first, ClientName: "Other", ClientEmail: "other@example.com"}, time.UTC)
	require.NoError(t, err)

	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: "bookings.created_at", SortDir: gDto.SortDirDesc}

	res, err := svc.ListByEmail(context.Background(), " PRIYA@example.com", params, time.UTC)
	require.NoError(t, err)
	require.Len(t, res.Bookings, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, "Spin", res.Bookings[0].ClassName)
	assert.Equal(t, "Yoga", res.Bookings[1].ClassName)

	res, err = svc.ListByEmail(context.Background(), "nobody@example.com", params, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, res.Bookings)
}
