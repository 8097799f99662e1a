package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fitbook/infras/otel"
	"fitbook/infras/postgres"
	"fitbook/internal/domains/class/model"
	"fitbook/shared"
	"fitbook/shared/constant"
	gDto "fitbook/shared/dto"
	"fitbook/shared/logger"
	gRepo "fitbook/shared/repository"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const decrementAvailableSlotsQuery = `UPDATE classes
SET available_slots = available_slots - 1, modified_at = NOW()
WHERE id = $1 AND available_slots > 0`

type ClassStore interface {
	Insert(ctx context.Context, model model.Class) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Class, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Class, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Class, error)
	DecrementAvailableSlotsTx(ctx context.Context, sqltx *sqlx.Tx, id string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Class]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ClassStore {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Class](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetForUpdateTx locks the class row for the rest of sqltx. A missing class, including
// an id that is not a UUID, yields the zero Class.
func (r *repositoryImpl) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Class, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".class.GetForUpdateTx")
	defer scope.End()

	class, err := r.Repository.GetForUpdateTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName))
	if gRepo.IsPqError(err, constant.PqErrorCodeInvalidText) {
		return model.Class{}, nil
	}

	if err != nil {
		return class, fmt.Errorf("failed to lock class: %w", err)
	}

	return class, nil
}

// DecrementAvailableSlotsTx takes one slot. It reports false when the class had none left.
func (r *repositoryImpl) DecrementAvailableSlotsTx(ctx context.Context, sqltx *sqlx.Tx, id string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".class.DecrementAvailableSlotsTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, decrementAvailableSlotsQuery)

	result, err := sqltx.ExecContext(ctx, decrementAvailableSlotsQuery, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to decrement available slots: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}
