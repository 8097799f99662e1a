package repository_test

import (
	"context"
	"fitbook/infras/otel/mocks"
	"fitbook/internal/domains/class/model"
	"fitbook/internal/domains/class/repository"
	"fitbook/shared"
	gDto "fitbook/shared/dto"
	gRepo "fitbook/shared/repository"
	"fitbook/shared/testutil"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassRepository_InsertAndGet(t *testing.T) {
	db := testutil.NewTestConnection(t)
	repo := repository.New(db, mocks.NewOtel())
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	class := model.Class{
		ID:             uuid.NewString(),
		Name:           "Evening Pilates",
		StartTime:      now.Add(48 * time.Hour),
		Instructor:     "Meera",
		TotalSlots:     12,
		AvailableSlots: 12,
	}
	class.CreatedAt = now
	class.ModifiedAt = now

	require.NoError(t, repo.Insert(ctx, class))

	got, err := repo.Get(ctx, shared.FilterByID(class.ID, model.FieldID, model.TableName))
	require.NoError(t, err)
	assert.Equal(t, class.Name, got.Name)
	assert.True(t, class.StartTime.Equal(got.StartTime))
	assert.Equal(t, 12, got.AvailableSlots)

	missing, err := repo.Get(ctx, shared.FilterByID(uuid.NewString(), model.FieldID, model.TableName))
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestClassRepository_UpcomingOnly(t *testing.T) {
	db := testutil.NewTestConnection(t)
	repo := repository.New(db, mocks.NewOtel())
	ctx := context.Background()

	now := time.Now().UTC()
	testutil.InsertClass(t, db.Write, "Yesterday Spin", now.Add(-24*time.Hour), 5)
	later := testutil.InsertClass(t, db.Write, "Later Yoga", now.Add(2*time.Hour), 5)
	sooner := testutil.InsertClass(t, db.Write, "Sooner Yoga", now.Add(time.Hour), 5)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []gDto.Clause{
			gDto.Filter{Field: model.FieldStartTime, Operator: gDto.FilterOperatorGreater, Value: now, Table: model.TableName},
		},
	}
	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}

	total, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	classes, err := repo.GetAll(ctx, params, filter)
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, sooner, classes[0].ID)
	assert.Equal(t, later, classes[1].ID)
}

func TestClassRepository_GetForUpdateTx(t *testing.T) {
	db := testutil.NewTestConnection(t)
	repo := repository.New(db, mocks.NewOtel())
	transactor := gRepo.NewTransactor(db, mocks.NewOtel())
	ctx := context.Background()

	id := testutil.InsertClass(t, db.Write, "Boxing", time.Now().Add(time.Hour), 2)

	err := transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		class, err := repo.GetForUpdateTx(ctx, tx, id)
		require.NoError(t, err)
		assert.Equal(t, id, class.ID)

		malformed, err := repo.GetForUpdateTx(ctx, tx, "not-a-uuid")
		require.NoError(t, err)
		assert.Empty(t, malformed.ID)

		return nil
	})
	require.NoError(t, err)
}

func TestClassRepository_DecrementAvailableSlotsTx(t *testing.T) {
	db := testutil.NewTestConnection(t)
	repo := repository.New(db, mocks.NewOtel())
	transactor := gRepo.NewTransactor(db, mocks.NewOtel())
	ctx := context.Background()

	id := testutil.InsertClass(t, db.Write, "HIIT", time.Now().Add(time.Hour), 2)

	results := make([]bool, 0, 3)

	for range 3 {
		err := transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
			ok, err := repo.DecrementAvailableSlotsTx(ctx, tx, id)
			results = append(results, ok)

			return err
		})
		require.NoError(t, err)
	}

	assert.Equal(t, []bool{true, true, false}, results)

	class, err := repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	require.NoError(t, err)
	assert.Equal(t, 0, class.AvailableSlots)
	assert.Equal(t, 2, class.TotalSlots)
}
