package services

import (
	"context"

	"supplytrack/internal/models"
	"supplytrack/internal/repositories"
)

type ReportService interface {
	GroupedBySupplier(ctx context.Context) ([]*models.SupplierInventoryGroup, error)
}

type reportService struct {
	reportRepo repositories.ReportRepository
}

func NewReportService(reportRepo repositories.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

// GroupedBySupplier returns the value-sorted report. The single query either
// succeeds whole or fails whole; there are no partial results to hide.
func (s *reportService) GroupedBySupplier(ctx context.Context) ([]*models.SupplierInventoryGroup, error) {
	groups, err := s.reportRepo.GroupedBySupplier(ctx)
	if err != nil {
		return nil, wrapStoreErr(ctx, err)
	}
	return groups, nil
}
