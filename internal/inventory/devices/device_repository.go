package devices

import (
	"context"
	"fmt"

	"github.com/ketankishore27/inventory-management/internal/repository"
	custom_error "github.com/ketankishore27/inventory-management/pkg/errors"
	"github.com/ketankishore27/inventory-management/pkg/metadata"
	"github.com/ketankishore27/inventory-management/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	inventoryTable = "inventory"
	serialColumn   = "service_tag_number"

	// NullGroupKey reports rows whose group column is NULL. JSON object keys
	// are strings, so a stored value spelled "null" shares this bucket and
	// the two counts are summed.
	NullGroupKey = "null"
)

type DeviceRepository interface {
	CountDevices(ctx context.Context) (int64, error)
	CountDevicesMatching(ctx context.Context, filter metadata.Filter) (int64, error)
	Breakdown(ctx context.Context, group metadata.GroupColumn, filter metadata.Filter) (map[string]int64, error)
	ListDevicesMatching(ctx context.Context, filter metadata.Filter, newestFirst bool) ([]models.Device, error)
}

type deviceRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) DeviceRepository {
	return &deviceRepositoryImpl{repository: r}
}

func (r *deviceRepositoryImpl) CountDevices(ctx context.Context) (int64, error) {
	return r.countDistinctSerials(ctx, "count all devices", nil)
}

func (r *deviceRepositoryImpl) CountDevicesMatching(ctx context.Context, filter metadata.Filter) (int64, error) {
	return r.countDistinctSerials(ctx, fmt.Sprintf("count %s devices", filter.Name), matching(filter))
}

func (r *deviceRepositoryImpl) Breakdown(ctx context.Context, group metadata.GroupColumn, filter metadata.Filter) (map[string]int64, error) {
	op := fmt.Sprintf("breakdown of %s devices by %s", filter.Name, group)
	if !group.IsValid() {
		return nil, custom_error.Validation(op, "unsupported group column %q", group)
	}

	query := r.repository.From(inventoryTable).
		Select(
			goqu.C(group.String()).As("group_key"),
			goqu.COUNT(goqu.Star()).As("count"),
		).
		Where(matching(filter)).
		GroupBy(goqu.C(group.String()))

	var flatCounts []models.FlatGroupCount
	if err := query.ScanStructsContext(ctx, &flatCounts); err != nil {
		return nil, custom_error.WrapDBError(op, err)
	}

	breakdown := make(map[string]int64, len(flatCounts))
	for _, flat := range flatCounts {
		key := NullGroupKey
		if flat.Key != nil {
			key = *flat.Key
		}
		breakdown[key] += flat.Count
	}

	return breakdown, nil
}

func (r *deviceRepositoryImpl) ListDevicesMatching(ctx context.Context, filter metadata.Filter, newestFirst bool) ([]models.Device, error) {
	query := r.repository.From(inventoryTable).Where(matching(filter))
	if newestFirst {
		query = query.Order(goqu.C("year").Desc())
	}

	devices := []models.Device{}
	if err := query.ScanStructsContext(ctx, &devices); err != nil {
		return nil, custom_error.WrapDBError(fmt.Sprintf("list %s devices", filter.Name), err)
	}

	return devices, nil
}

func (r *deviceRepositoryImpl) countDistinctSerials(ctx context.Context, op string, where exp.Expression) (int64, error) {
	query := r.repository.From(inventoryTable).
		Select(goqu.COUNT(goqu.DISTINCT(serialColumn)).As("count"))
	if where != nil {
		query = query.Where(where)
	}

	var count int64
	if _, err := query.ScanValContext(ctx, &count); err != nil {
		return 0, custom_error.WrapDBError(op, err)
	}

	return count, nil
}

func matching(filter metadata.Filter) exp.Expression {
	return goqu.Func("LOWER", goqu.C(filter.Column)).Like(filter.Pattern())
}
