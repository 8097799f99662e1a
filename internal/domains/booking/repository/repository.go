package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fitbook/infras/otel"
	"fitbook/infras/postgres"
	"fitbook/internal/domains/booking/model"
	"fitbook/shared/constant"
	gDto "fitbook/shared/dto"
	gRepo "fitbook/shared/repository"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type BookingStore interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error)
	CountDetails(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	bookings gRepo.Repository[model.Booking]
	details  gRepo.Repository[model.BookingDetail]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) BookingStore {
	return &repositoryImpl{
		bookings: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:  gRepo.NewRepository[model.BookingDetail](model.EntityName+"_detail", model.TableName, model.FieldID, db, otel),
		db:       db,
		otel:     otel,
	}
}

// InsertTx reports a second booking for the same class and email as ErrDuplicateBooking.
func (r *repositoryImpl) InsertTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertTx")
	defer scope.End()

	err := r.bookings.InsertTx(ctx, sqltx, booking)
	if gRepo.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
		scope.AddEvent("duplicate booking")

		return fmt.Errorf("%w: %w", model.ErrDuplicateBooking, err)
	}

	return err //nolint:wrapcheck
}

func (r *repositoryImpl) ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error) {
	return r.bookings.ExistTx(ctx, sqltx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error) {
	return r.details.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountDetails(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.details.Count(ctx, filter) //nolint:wrapcheck
}
