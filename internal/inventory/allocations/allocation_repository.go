package allocations

import (
	"context"
	"strings"

	"github.com/ketankishore27/inventory-management/internal/repository"
	custom_error "github.com/ketankishore27/inventory-management/pkg/errors"
	"github.com/ketankishore27/inventory-management/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const allocationTable = "resources_allocation_all"

type AllocationRepository interface {
	PersistAllocation(ctx context.Context, req models.AllocationRequest) error
	FindByAssignee(ctx context.Context, name, email string) ([]models.Allocation, error)
	FindBySerialNumber(ctx context.Context, serialNumber string) (*models.Allocation, error)
	UpdateAllocation(ctx context.Context, req models.UpdateAllocationRequest) (int64, error)
	DeleteAllocation(ctx context.Context, serialNumber string) (int64, error)
}

type allocationRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) AllocationRepository {
	return &allocationRepositoryImpl{repository: r}
}

func (r *allocationRepositoryImpl) PersistAllocation(ctx context.Context, req models.AllocationRequest) error {
	const op = "add resource allocation"

	err := repository.WithTransaction(ctx, r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		_, err := tx.Insert(r.repository.Table(allocationTable)).
			Prepared(true).
			Rows(goqu.Record{
				"name":               req.Name,
				"service_tag_number": req.SerialNumber,
				"allocation_date":    req.AllocationDate,
				"cost_center":        req.PO,
				"location":           req.Location,
				"email":              req.Email,
				"details":            req.DetailsValue(),
			}).
			Executor().
			ExecContext(ctx)
		if err != nil {
			return custom_error.WrapDBError(op, err)
		}
		return nil
	})

	return custom_error.WrapDBError(op, err)
}

func (r *allocationRepositoryImpl) FindByAssignee(ctx context.Context, name, email string) ([]models.Allocation, error) {
	query := r.repository.From(allocationTable).
		Where(
			lowerEq("name", name),
			lowerEq("email", email),
		)

	allocations := []models.Allocation{}
	if err := query.ScanStructsContext(ctx, &allocations); err != nil {
		return nil, custom_error.WrapDBError("get resource allocation", err)
	}

	for i := range allocations {
		allocations[i].NormalizeDates()
	}

	return allocations, nil
}

// FindBySerialNumber returns the single allocation for serialNumber. Zero
// matches is NotFound and more than one is Conflict.
func (r *allocationRepositoryImpl) FindBySerialNumber(ctx context.Context, serialNumber string) (*models.Allocation, error) {
	const op = "get serial number allocation"

	query := r.repository.From(allocationTable).
		Where(lowerEq("service_tag_number", serialNumber)).
		Limit(2)

	var allocations []models.Allocation
	if err := query.ScanStructsContext(ctx, &allocations); err != nil {
		return nil, custom_error.WrapDBError(op, err)
	}

	switch len(allocations) {
	case 0:
		return nil, custom_error.NotFound(op, "no allocation for serial number %q", serialNumber)
	case 1:
		allocations[0].NormalizeDates()
		return &allocations[0], nil
	default:
		return nil, custom_error.Conflict(op, "serial number %q has more than one allocation", serialNumber)
	}
}

func (r *allocationRepositoryImpl) UpdateAllocation(ctx context.Context, req models.UpdateAllocationRequest) (int64, error) {
	const op = "update resource allocation"

	var rowsAffected int64
	err := repository.WithTransaction(ctx, r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		result, err := tx.Update(r.repository.Table(allocationTable)).
			Prepared(true).
			Set(goqu.Record{
				"name":            req.Name,
				"allocation_date": req.AllocationDate,
				"cost_center":     req.CostCenter,
				"location":        req.Location,
				"email":           req.Email,
				"details":         req.DetailsValue(),
			}).
			Where(lowerEq("service_tag_number", req.SerialNumber)).
			Executor().
			ExecContext(ctx)
		if err != nil {
			return custom_error.WrapDBError(op, err)
		}

		rowsAffected, err = result.RowsAffected()
		if err != nil {
			return custom_error.WrapDBError(op, err)
		}
		return nil
	})

	return rowsAffected, custom_error.WrapDBError(op, err)
}

func (r *allocationRepositoryImpl) DeleteAllocation(ctx context.Context, serialNumber string) (int64, error) {
	const op = "delete resources"

	var rowsAffected int64
	err := repository.WithTransaction(ctx, r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		result, err := tx.Delete(r.repository.Table(allocationTable)).
			Prepared(true).
			Where(lowerEq("service_tag_number", serialNumber)).
			Executor().
			ExecContext(ctx)
		if err != nil {
			return custom_error.WrapDBError(op, err)
		}

		rowsAffected, err = result.RowsAffected()
		if err != nil {
			return custom_error.WrapDBError(op, err)
		}
		return nil
	})

	return rowsAffected, custom_error.WrapDBError(op, err)
}

func lowerEq(column, value string) exp.Expression {
	return goqu.Func("LOWER", goqu.C(column)).Eq(strings.ToLower(value))
}
