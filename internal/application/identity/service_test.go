package identity

import (
	"context"
	"testing"
	"time"

	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/auth"
	"github.com/aqario/backend/internal/infrastructure/config"
	"github.com/aqario/backend/internal/infrastructure/persistence"
	"github.com/aqario/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPassword = "secret123"

type testEnv struct {
	auth      *AuthService
	tenants   *TenantService
	users     *UserService
	userRepo  *persistence.GormUserRepository
	blacklist *auth.InMemoryTokenBlacklist
	assets    *storage.FileSystemStorage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database, err := persistence.NewDatabase(&config.DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, database.AutoMigrate())
	require.NoError(t, persistence.InstallTenantGuard(database.DB))

	assets, err := storage.NewFileSystemStorage(t.TempDir(), "/media", zap.NewNop())
	require.NoError(t, err)

	jwt := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret",
		RefreshSecret:          "test-refresh-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "aqario-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	userRepo := persistence.NewGormUserRepository(database.DB)
	tenantRepo := persistence.NewGormTenantRepository(database.DB)
	log := zap.NewNop()

	return &testEnv{
		auth:      NewAuthService(userRepo, tenantRepo, persistence.NewGormRegistrar(database.DB), jwt, blacklist, log),
		tenants:   NewTenantService(tenantRepo, assets, log),
		users:     NewUserService(userRepo, blacklist, 24*time.Hour, log),
		userRepo:  userRepo,
		blacklist: blacklist,
		assets:    assets,
	}
}

func (e *testEnv) registerOwner(t *testing.T, username, subdomain string) (*RegisterResponse, Actor) {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), RegisterRequest{
		Username:   username,
		Password:   testPassword,
		TenantName: "Agency " + subdomain,
		Subdomain:  subdomain,
	}, nil)
	require.NoError(t, err)
	return resp, Actor{UserID: resp.User.ID, Role: identity.RoleOwner, TenantID: &resp.Tenant.ID}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, code, de.Code)
}

func TestRegister_CreatesTenantWithOwner(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.registerOwner(t, "owner1", "Alpha-Homes")

	require.NotNil(t, resp.Tenant)
	assert.Equal(t, "alpha-homes", resp.Tenant.Subdomain)
	assert.Equal(t, "OWNER", resp.User.Role)
	assert.Equal(t, resp.Tenant.ID, *resp.User.TenantID)

	_, err := env.auth.Register(context.Background(), RegisterRequest{
		Username: "owner2", Password: testPassword, TenantName: "Other", Subdomain: "alpha-homes",
	}, nil)
	assertCode(t, err, "ALREADY_EXISTS")

	_, err = env.auth.Register(context.Background(), RegisterRequest{
		Username: "owner1", Password: testPassword, TenantName: "Other", Subdomain: "other",
	}, nil)
	assertCode(t, err, "ALREADY_EXISTS")
}

func TestRegister_JoinsHeaderTenantAsClient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner, _ := env.registerOwner(t, "owner1", "alpha")

	tenant, err := env.tenants.Resolve(ctx, owner.Tenant.ID.String())
	require.NoError(t, err)

	resp, err := env.auth.Register(ctx, RegisterRequest{Username: "visitor", Password: testPassword}, tenant)
	require.NoError(t, err)
	assert.Equal(t, "CLIENT", resp.User.Role)
	assert.Equal(t, tenant.ID, *resp.User.TenantID)

	_, err = env.auth.Register(ctx, RegisterRequest{Username: "orphan", Password: testPassword}, nil)
	assertCode(t, err, "VALIDATION_ERROR")
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerOwner(t, "owner1", "alpha")

	tokens, err := env.auth.Login(ctx, LoginRequest{Username: "owner1", Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.Access)
	assert.NotEmpty(t, tokens.Refresh)
	assert.Equal(t, "Bearer", tokens.TokenType)
	require.NotNil(t, tokens.User)
	assert.Equal(t, "owner1", tokens.User.Username)

	stored, err := env.userRepo.FindByUsername(ctx, "owner1")
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)

	_, err = env.auth.Login(ctx, LoginRequest{Username: "owner1", Password: "wrong-pass1"})
	assertCode(t, err, "INVALID_CREDENTIALS")
	_, err = env.auth.Login(ctx, LoginRequest{Username: "nobody", Password: testPassword})
	assertCode(t, err, "INVALID_CREDENTIALS")

	stored.Deactivate()
	require.NoError(t, env.userRepo.Save(ctx, stored))
	_, err = env.auth.Login(ctx, LoginRequest{Username: "owner1", Password: testPassword})
	assertCode(t, err, "ACCOUNT_INACTIVE")
}

func TestRefresh_RotatesRefreshToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerOwner(t, "owner1", "alpha")

	first, err := env.auth.Login(ctx, LoginRequest{Username: "owner1", Password: testPassword})
	require.NoError(t, err)

	second, err := env.auth.Refresh(ctx, RefreshRequest{Refresh: first.Refresh})
	require.NoError(t, err)
	assert.NotEqual(t, first.Refresh, second.Refresh)

	_, err = env.auth.Refresh(ctx, RefreshRequest{Refresh: first.Refresh})
	assertCode(t, err, "TOKEN_REVOKED")

	_, err = env.auth.Refresh(ctx, RefreshRequest{Refresh: first.Access})
	assertCode(t, err, "TOKEN_INVALID")
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	reg, _ := env.registerOwner(t, "owner1", "alpha")

	tokens, err := env.auth.Login(ctx, LoginRequest{Username: "owner1", Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(ctx, LogoutInput{
		UserID:    reg.User.ID,
		AccessJTI: "access-jti",
		AccessTTL: time.Minute,
		Refresh:   tokens.Refresh,
	}))

	revoked, err := env.blacklist.IsBlacklisted(ctx, "access-jti")
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = env.auth.Refresh(ctx, RefreshRequest{Refresh: tokens.Refresh})
	assertCode(t, err, "TOKEN_REVOKED")
}

func TestMe_IncludesTenant(t *testing.T) {
	env := newTestEnv(t)
	reg, _ := env.registerOwner(t, "owner1", "alpha")

	me, err := env.auth.Me(context.Background(), reg.User.ID)
	require.NoError(t, err)
	require.NotNil(t, me.Tenant)
	assert.Equal(t, "alpha", me.Tenant.Subdomain)
}

func TestTenantService_Resolve(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	reg, _ := env.registerOwner(t, "owner1", "alpha")

	tenant, err := env.tenants.Resolve(ctx, " "+reg.Tenant.ID.String()+" ")
	require.NoError(t, err)
	assert.Equal(t, "alpha", tenant.Subdomain)

	for _, header := range []string{"", "not-a-uuid", uuid.Nil.String(), uuid.NewString()} {
		_, err := env.tenants.Resolve(ctx, header)
		assert.ErrorIs(t, err, shared.ErrInvalidTenant, header)
	}
}

func TestTenantService_ResolveSubdomain(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	reg, _ := env.registerOwner(t, "owner1", "alpha")

	tenant, err := env.tenants.ResolveSubdomain(ctx, "Alpha")
	require.NoError(t, err)
	assert.Equal(t, reg.Tenant.ID, tenant.ID)

	_, err = env.tenants.ResolveSubdomain(ctx, "gamma")
	assert.ErrorIs(t, err, shared.ErrInvalidTenant)
}

func TestTenantService_Visibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alpha, alphaOwner := env.registerOwner(t, "owner1", "alpha")
	beta, _ := env.registerOwner(t, "owner2", "beta")
	super := Actor{UserID: uuid.New(), Role: identity.RoleSuperAdmin}

	all, total, err := env.tenants.List(ctx, super, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	own, total, err := env.tenants.List(ctx, alphaOwner, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, alpha.Tenant.ID, own[0].ID)

	_, err = env.tenants.Get(ctx, alphaOwner, beta.Tenant.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = env.tenants.Create(ctx, alphaOwner, CreateTenantRequest{Name: "Gamma", Subdomain: "gamma"})
	assertCode(t, err, "FORBIDDEN")

	created, err := env.tenants.Create(ctx, super, CreateTenantRequest{Name: "Gamma", Subdomain: "gamma"})
	require.NoError(t, err)
	assert.Equal(t, "gamma", created.Subdomain)
}

func TestTenantService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alpha, owner := env.registerOwner(t, "owner1", "alpha")
	env.registerOwner(t, "owner2", "beta")

	name := "Alpha Realty"
	updated, err := env.tenants.Update(ctx, owner, alpha.Tenant.ID, UpdateTenantRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alpha Realty", updated.Name)

	taken := "beta"
	_, err = env.tenants.Update(ctx, owner, alpha.Tenant.ID, UpdateTenantRequest{Subdomain: &taken})
	assertCode(t, err, "ALREADY_EXISTS")

	admin := owner
	admin.Role = identity.RoleAdmin
	_, err = env.tenants.Update(ctx, admin, alpha.Tenant.ID, UpdateTenantRequest{Name: &name})
	assertCode(t, err, "FORBIDDEN")
}

func TestTenantService_UploadLogo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alpha, owner := env.registerOwner(t, "owner1", "alpha")

	resp, err := env.tenants.UploadLogo(ctx, owner, alpha.Tenant.ID, "Logo.PNG", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, storage.TenantLogoKey(alpha.Tenant.ID, ".png"), resp.Logo)

	data, err := env.assets.Get(ctx, resp.Logo)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	_, err = env.tenants.UploadLogo(ctx, owner, alpha.Tenant.ID, "logo.exe", []byte("x"))
	assertCode(t, err, "VALIDATION_ERROR")
}

func TestUserService_RoleGrants(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alpha, owner := env.registerOwner(t, "owner1", "alpha")
	scope := shared.MustScope(alpha.Tenant.ID)

	adminResp, err := env.users.Create(ctx, owner, scope, CreateUserRequest{
		Username: "admin1", Password: testPassword, Role: "ADMIN",
	})
	require.NoError(t, err)
	admin := Actor{UserID: adminResp.ID, Role: identity.RoleAdmin, TenantID: &alpha.Tenant.ID}

	_, err = env.users.Create(ctx, admin, scope, CreateUserRequest{
		Username: "owner9", Password: testPassword, Role: "OWNER",
	})
	assertCode(t, err, "FORBIDDEN")

	employee, err := env.users.Create(ctx, admin, scope, CreateUserRequest{
		Username: "emp1", Password: testPassword, Role: "EMPLOYEE", Email: "emp1@alpha.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMPLOYEE", employee.Role)

	role := "OWNER"
	_, err = env.users.Update(ctx, admin, scope, employee.ID, UpdateUserRequest{Role: &role})
	assertCode(t, err, "FORBIDDEN")

	_, err = env.users.Update(ctx, admin, scope, owner.UserID, UpdateUserRequest{FirstName: &role})
	assertCode(t, err, "FORBIDDEN")

	list, total, err := env.users.List(ctx, scope, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, list, 3)
}

func TestUserService_TenantIsolation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alpha, _ := env.registerOwner(t, "owner1", "alpha")
	beta, _ := env.registerOwner(t, "owner2", "beta")

	_, err := env.users.Get(ctx, shared.MustScope(beta.Tenant.ID), alpha.User.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = env.users.Get(ctx, shared.Scope{}, alpha.User.ID)
	assert.ErrorIs(t, err, shared.ErrTenantRequired)
}

func TestUserService_DeactivateRevokesSessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alpha, owner := env.registerOwner(t, "owner1", "alpha")
	scope := shared.MustScope(alpha.Tenant.ID)

	emp, err := env.users.Create(ctx, owner, scope, CreateUserRequest{Username: "emp1", Password: testPassword, Role: "EMPLOYEE"})
	require.NoError(t, err)
	issuedAt := time.Now().Add(-time.Minute)

	inactive := false
	updated, err := env.users.Update(ctx, owner, scope, emp.ID, UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	invalidated, err := env.blacklist.IsUserTokenInvalidated(ctx, emp.ID.String(), issuedAt)
	require.NoError(t, err)
	assert.True(t, invalidated)

	assertCode(t, env.users.Delete(ctx, owner, scope, owner.UserID), "FORBIDDEN")
	require.NoError(t, env.users.Delete(ctx, owner, scope, emp.ID))
	_, err = env.users.Get(ctx, scope, emp.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
