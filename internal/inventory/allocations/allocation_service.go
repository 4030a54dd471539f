package allocations

import (
	"context"
	"strings"

	custom_error "github.com/ketankishore27/inventory-management/pkg/errors"
	"github.com/ketankishore27/inventory-management/pkg/models"

	"go.uber.org/zap"
)

type AllocationService struct {
	repo AllocationRepository
	log  *zap.Logger
}

func NewAllocationService(repo AllocationRepository, log *zap.Logger) *AllocationService {
	return &AllocationService{
		repo: repo,
		log:  log,
	}
}

func (s *AllocationService) Allocate(ctx context.Context, req models.AllocationRequest) error {
	req.SerialNumber = strings.TrimSpace(req.SerialNumber)
	if req.SerialNumber == "" {
		return custom_error.Validation("add resource allocation", "serialNumber must not be empty")
	}

	if err := s.repo.PersistAllocation(ctx, req); err != nil {
		return err
	}

	s.log.Info("Allocated device", zap.String("serial_number", req.SerialNumber))
	return nil
}

func (s *AllocationService) FindForAssignee(ctx context.Context, req models.AssigneeLookupRequest) ([]models.Allocation, error) {
	return s.repo.FindByAssignee(ctx, strings.TrimSpace(req.Name), strings.TrimSpace(req.Email))
}

func (s *AllocationService) FindForSerialNumber(ctx context.Context, serialNumber string) (*models.Allocation, error) {
	return s.repo.FindBySerialNumber(ctx, strings.TrimSpace(serialNumber))
}

// Reallocate overwrites the allocation of req.SerialNumber. A serial number
// without an allocation is not an error; the update simply touches no rows.
func (s *AllocationService) Reallocate(ctx context.Context, req models.UpdateAllocationRequest) error {
	req.SerialNumber = strings.TrimSpace(req.SerialNumber)

	rows, err := s.repo.UpdateAllocation(ctx, req)
	if err != nil {
		return err
	}

	if rows == 0 {
		s.log.Warn("Update matched no allocation", zap.String("serial_number", req.SerialNumber))
	}
	return nil
}

// Release removes the allocation of serialNumber, with the same no-op
// behaviour as Reallocate for unknown serial numbers.
func (s *AllocationService) Release(ctx context.Context, serialNumber string) error {
	serialNumber = strings.TrimSpace(serialNumber)

	rows, err := s.repo.DeleteAllocation(ctx, serialNumber)
	if err != nil {
		return err
	}

	if rows == 0 {
		s.log.Warn("Delete matched no allocation", zap.String("serial_number", serialNumber))
	}
	return nil
}
