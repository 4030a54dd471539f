package container

import (
	"database/sql"

	"github.com/ketankishore27/inventory-management/internal/inventory/allocations"
	"github.com/ketankishore27/inventory-management/internal/inventory/devices"
	"github.com/ketankishore27/inventory-management/internal/repository"

	"go.uber.org/zap"
)

type Container struct {
	Repository        *repository.Repository
	Logger            *zap.Logger
	DeviceHandler     *devices.DeviceHandler
	AllocationHandler *allocations.AllocationHandler
}

func NewAppContainer(db *sql.DB, dialect, schema string, log *zap.Logger) *Container {
	repo := repository.NewRepository(db, dialect, schema)
	deviceRepo := devices.NewRepository(repo)
	deviceHandler := devices.NewDeviceHandler(deviceRepo, log)
	allocationRepo := allocations.NewRepository(repo)
	allocationService := allocations.NewAllocationService(allocationRepo, log)
	allocationHandler := allocations.NewAllocationHandler(allocationService, log)

	return &Container{
		Repository:        repo,
		Logger:            log,
		DeviceHandler:     deviceHandler,
		AllocationHandler: allocationHandler,
	}
}
