package finance

import (
	"context"
	"time"

	"github.com/aqario/backend/internal/domain/finance"
	"github.com/aqario/backend/internal/domain/leasing"
	"github.com/aqario/backend/internal/domain/partner"
	"github.com/aqario/backend/internal/domain/property"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/domain/shared/valueobject"
	"github.com/aqario/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DashboardService aggregates the tenant's counts and revenue figures
type DashboardService struct {
	properties property.Repository
	clients    partner.ClientRepository
	contracts  leasing.Repository
	invoices   finance.InvoiceRepository
	logger     *zap.Logger
	now        func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	properties property.Repository,
	clients partner.ClientRepository,
	contracts leasing.Repository,
	invoices finance.InvoiceRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		properties: properties,
		clients:    clients,
		contracts:  contracts,
		invoices:   invoices,
		logger:     logger,
		now:        time.Now,
	}
}

// Stats computes the dashboard of one tenant
func (s *DashboardService) Stats(ctx context.Context, scope shared.Scope) (stats *DashboardStats, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "DashboardService", "Stats")
	defer func() { telemetry.EndSpan(span, err) }()

	if err := scope.Validate(); err != nil {
		return nil, err
	}

	stats = &DashboardStats{}
	if stats.Counts.Properties, err = s.properties.Count(ctx, scope); err != nil {
		return nil, err
	}
	if stats.Counts.Clients, err = s.clients.Count(ctx, scope); err != nil {
		return nil, err
	}
	if stats.Counts.ActiveContracts, err = s.contracts.CountByStatus(ctx, scope, leasing.StatusActive); err != nil {
		return nil, err
	}

	sums, err := s.invoices.SumTotalByStatus(ctx, scope)
	if err != nil {
		return nil, err
	}
	stats.Financial = DashboardFinancial{
		TotalRevenue:  valueobject.NewFixed2(sumOf(sums, finance.StatusPaid)),
		PendingAmount: valueobject.NewFixed2(sumOf(sums, finance.StatusPending)),
		OverdueAmount: valueobject.NewFixed2(sumOf(sums, finance.StatusOverdue)),
	}

	now := s.now()
	from, to := finance.RevenueWindow(now)
	paid, err := s.invoices.FindPaidBetween(ctx, scope, from, to)
	if err != nil {
		return nil, err
	}
	stats.Charts.MonthlyRevenue = finance.BucketMonthlyRevenue(paid, now)

	byType, err := s.properties.CountByType(ctx, scope)
	if err != nil {
		return nil, err
	}
	stats.Charts.PropertyDistribution = make([]PropertyTypeCount, 0, len(byType))
	for _, t := range property.AllTypes {
		if n := byType[t]; n > 0 {
			stats.Charts.PropertyDistribution = append(stats.Charts.PropertyDistribution,
				PropertyTypeCount{PropertyType: string(t), Count: n})
		}
	}

	s.logger.Debug("Dashboard computed",
		zap.String("tenant_id", scope.String()),
		zap.Int("paid_rows", len(paid)))
	return stats, nil
}

func sumOf(sums map[finance.Status]decimal.Decimal, st finance.Status) decimal.Decimal {
	if v, ok := sums[st]; ok {
		return v
	}
	return decimal.Zero
}
