package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/aqario/backend/internal/domain/finance"
	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/domain/leasing"
	"github.com/aqario/backend/internal/domain/partner"
	"github.com/aqario/backend/internal/domain/property"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultSeedPassword is the password of every seeded account
const DefaultSeedPassword = "password123"

// SeedOptions configures Seed
type SeedOptions struct {
	Password string
	// Now anchors contract and invoice dates; defaults to today in UTC
	Now func() time.Time
}

// SeedResult counts what Seed created
type SeedResult struct {
	Tenants    int
	Users      int
	Properties int
	Contracts  int
	Invoices   int
}

type demoTenant struct {
	name, subdomain string
	properties      int
	contracts       int
	withClientUser  bool
}

var demoTenants = []demoTenant{
	{name: "Alpha Real Estate", subdomain: "alpha", properties: 5, contracts: 2, withClientUser: true},
	{name: "Beta Properties", subdomain: "beta"},
}

var demoPropertyTypes = []property.Type{property.TypeApartment, property.TypeVilla, property.TypeOffice}

// Seed creates the superadmin "admin" and the demo tenants alpha and beta
// with an owner each. Alpha also gets properties, a client, contracts and
// invoices. Existing accounts and tenants are left untouched, so Seed can
// run repeatedly.
func Seed(ctx context.Context, db *gorm.DB, opts SeedOptions, logger *zap.Logger) (SeedResult, error) {
	if opts.Password == "" {
		opts.Password = DefaultSeedPassword
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}

	s := &seeder{
		opts:       opts,
		logger:     logger,
		tenants:    persistence.NewGormTenantRepository(db),
		users:      persistence.NewGormUserRepository(db),
		registrar:  persistence.NewGormRegistrar(db),
		properties: persistence.NewGormPropertyRepository(db),
		clients:    persistence.NewGormClientRepository(db),
		contracts:  persistence.NewGormContractRepository(db),
		invoices:   persistence.NewGormInvoiceRepository(db),
	}

	if err := s.superAdmin(ctx); err != nil {
		return s.result, err
	}
	for _, dt := range demoTenants {
		if err := s.tenant(ctx, dt); err != nil {
			return s.result, fmt.Errorf("seed tenant %s: %w", dt.subdomain, err)
		}
	}
	logger.Info("Seeding complete",
		zap.Int("tenants", s.result.Tenants),
		zap.Int("users", s.result.Users),
		zap.Int("properties", s.result.Properties),
		zap.Int("contracts", s.result.Contracts),
		zap.Int("invoices", s.result.Invoices))
	return s.result, nil
}

type seeder struct {
	opts       SeedOptions
	logger     *zap.Logger
	result     SeedResult
	tenants    *persistence.GormTenantRepository
	users      *persistence.GormUserRepository
	registrar  *persistence.GormRegistrar
	properties *persistence.GormPropertyRepository
	clients    *persistence.GormClientRepository
	contracts  *persistence.GormContractRepository
	invoices   *persistence.GormInvoiceRepository
}

func (s *seeder) superAdmin(ctx context.Context) error {
	exists, err := s.users.ExistsByUsername(ctx, "admin")
	if err != nil || exists {
		return err
	}
	admin, err := identity.NewUser(nil, "admin", s.opts.Password, identity.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if err := admin.SetEmail("admin@example.com"); err != nil {
		return err
	}
	if err := s.users.Save(ctx, admin); err != nil {
		return err
	}
	s.result.Users++
	return nil
}

func (s *seeder) tenant(ctx context.Context, dt demoTenant) error {
	exists, err := s.tenants.ExistsBySubdomain(ctx, dt.subdomain)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Info("Tenant already seeded", zap.String("subdomain", dt.subdomain))
		return nil
	}

	t, err := identity.NewTenant(dt.name, dt.subdomain)
	if err != nil {
		return err
	}
	owner, err := s.newUser(t, dt.subdomain+"_owner", "owner@"+dt.subdomain+".com", identity.RoleOwner)
	if err != nil {
		return err
	}
	if err := s.registrar.CreateTenantWithOwner(ctx, t, owner); err != nil {
		return err
	}
	s.result.Tenants++
	s.result.Users++

	scope := t.Scope()
	if dt.withClientUser {
		u, err := s.newUser(t, dt.subdomain+"_client", "client@"+dt.subdomain+".com", identity.RoleClient)
		if err != nil {
			return err
		}
		if err := s.users.SaveForTenant(ctx, scope, u); err != nil {
			return err
		}
		s.result.Users++
	}
	if dt.properties == 0 {
		return nil
	}

	client, err := partner.NewClient(scope, partner.ClientDetails{
		Name:  dt.name + " Client",
		Phone: "0501234567",
		Email: "client@" + dt.subdomain + ".com",
	})
	if err != nil {
		return err
	}
	if err := s.clients.Save(ctx, scope, client); err != nil {
		return err
	}

	today := s.opts.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < dt.properties; i++ {
		prop, err := property.NewProperty(scope, property.Details{
			Title:       fmt.Sprintf("%s Property %d", dt.name, i+1),
			Type:        demoPropertyTypes[i%len(demoPropertyTypes)],
			Area:        decimal.NewFromInt(int64(100 + 50*i)),
			Location:    fmt.Sprintf("Location %d", i+1),
			Price:       decimal.NewFromInt(int64(2000 + 1000*i)),
			Description: "Beautiful property",
		})
		if err != nil {
			return err
		}
		if err := s.properties.Save(ctx, scope, prop); err != nil {
			return err
		}
		s.result.Properties++

		if i >= dt.contracts {
			continue
		}
		if err := s.lease(ctx, scope, dt, i, prop, client, today); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) lease(ctx context.Context, scope shared.Scope, dt demoTenant, i int,
	prop *property.Property, client *partner.Client, today time.Time) error {
	contract, err := leasing.NewContract(scope, prop, client, leasing.Terms{
		StartDate:     today,
		EndDate:       today.AddDate(0, 0, 365),
		MonthlyAmount: prop.Price,
		TotalAmount:   prop.Price.Mul(decimal.NewFromInt(12)),
	})
	if err != nil {
		return err
	}
	if err := s.contracts.Save(ctx, scope, contract); err != nil {
		return err
	}
	s.result.Contracts++

	inv, err := finance.NewInvoice(scope, contract, finance.Details{
		InvoiceNumber: fmt.Sprintf("%s-%04d", dt.subdomain, i+1),
		Amount:        contract.MonthlyAmount,
		TaxRate:       finance.DefaultTaxRate,
		DueDate:       today.AddDate(0, 0, 30),
		Status:        finance.StatusPending,
	})
	if err != nil {
		return err
	}
	if err := s.invoices.Save(ctx, scope, inv); err != nil {
		return err
	}
	s.result.Invoices++
	return nil
}

func (s *seeder) newUser(t *identity.Tenant, username, email string, role identity.Role) (*identity.User, error) {
	tenantID := t.ID
	u, err := identity.NewUser(&tenantID, username, s.opts.Password, role)
	if err != nil {
		return nil, err
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	return u, nil
}
