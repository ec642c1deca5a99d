package identity

import (
	"context"
	"errors"
	"time"

	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/auth"
	"github.com/aqario/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	errInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	errAccountInactive    = shared.NewDomainError("ACCOUNT_INACTIVE", "Account has been deactivated")
	errTokenInvalid       = shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	errTokenExpired       = shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	errTokenRevoked       = shared.NewDomainError("TOKEN_REVOKED", "Refresh token has been revoked")
)

// AuthService handles login, token refresh, logout and registration
type AuthService struct {
	users     identity.UserRepository
	tenants   identity.TenantRepository
	registrar identity.Registrar
	jwt       *auth.JWTService
	blacklist auth.TokenBlacklist
	logger    *zap.Logger
	now       func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(
	users identity.UserRepository,
	tenants identity.TenantRepository,
	registrar identity.Registrar,
	jwt *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tenants:   tenants,
		registrar: registrar,
		jwt:       jwt,
		blacklist: blacklist,
		logger:    logger,
		now:       time.Now,
	}
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (result *TokenResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "AuthService", "Login")
	defer func() { telemetry.EndSpan(span, err) }()

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login for unknown user", zap.String("username", req.Username))
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", req.Username))
		return nil, errInvalidCredentials
	}
	if !user.IsActive {
		s.logger.Warn("Login attempt for deactivated account", zap.String("username", req.Username))
		return nil, errAccountInactive
	}

	pair, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	user.RecordLogin(s.now())
	if err := s.users.Save(ctx, user); err != nil {
		// the login itself succeeded
		s.logger.Error("Failed to record login", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	resp := ToUserResponse(user)
	pair.User = &resp
	s.logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role.String()))
	return pair, nil
}

// Refresh exchanges a refresh token for a new pair. The presented refresh
// token is revoked so it cannot be replayed.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*TokenResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(req.Refresh)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, errTokenExpired
		}
		return nil, errTokenInvalid
	}
	if err := s.checkRevoked(ctx, claims); err != nil {
		return nil, err
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, errTokenInvalid
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, errTokenInvalid
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, errAccountInactive
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		return nil, err
	}
	return s.issue(user)
}

// Logout revokes the access token and, when given, the refresh token
func (s *AuthService) Logout(ctx context.Context, in LogoutInput) error {
	if in.AccessJTI != "" {
		if err := s.blacklist.AddToBlacklist(ctx, in.AccessJTI, in.AccessTTL); err != nil {
			return err
		}
	}
	if in.Refresh != "" {
		if claims, err := s.jwt.ValidateRefreshToken(in.Refresh); err == nil {
			if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
				return err
			}
		}
	}
	s.logger.Info("User logged out", zap.String("user_id", in.UserID.String()))
	return nil
}

// Me returns the user with their tenant
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	if user.TenantID != nil {
		t, err := s.tenants.FindByID(ctx, *user.TenantID)
		if err != nil {
			return nil, err
		}
		tr := ToTenantResponse(t)
		resp.Tenant = &tr
	}
	return &resp, nil
}

// Register creates a user. joinTenant is the tenant selected by the request
// header, used when the request does not create its own tenant.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest, joinTenant *identity.Tenant) (result *RegisterResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "AuthService", "Register")
	defer func() { telemetry.EndSpan(span, err) }()

	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A user with that username already exists").
			WithDetail("username", "A user with that username already exists")
	}

	if req.wantsTenant() {
		return s.registerOwner(ctx, req)
	}
	if joinTenant == nil {
		return nil, shared.NewValidationError("tenant_name",
			"tenant_name and subdomain are required unless X-Tenant-ID selects a tenant")
	}

	tenantID := joinTenant.ID
	user, err := newUserFrom(&tenantID, req.Username, req.Password, identity.RoleClient, req.Email, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}
	if err := s.users.SaveForTenant(ctx, joinTenant.Scope(), user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("tenant_id", tenantID.String()))
	tr := ToTenantResponse(joinTenant)
	return &RegisterResponse{User: ToUserResponse(user), Tenant: &tr}, nil
}

func (s *AuthService) registerOwner(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if req.TenantName == "" {
		return nil, shared.NewValidationError("tenant_name", "tenant_name is required with subdomain")
	}
	if req.Subdomain == "" {
		return nil, shared.NewValidationError("subdomain", "subdomain is required with tenant_name")
	}

	tenant, err := identity.NewTenant(req.TenantName, req.Subdomain)
	if err != nil {
		return nil, err
	}
	exists, err := s.tenants.ExistsBySubdomain(ctx, tenant.Subdomain)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Subdomain is already taken").
			WithDetail("subdomain", "Subdomain is already taken")
	}

	tenantID := tenant.ID
	owner, err := newUserFrom(&tenantID, req.Username, req.Password, identity.RoleOwner, req.Email, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}
	if err := s.registrar.CreateTenantWithOwner(ctx, tenant, owner); err != nil {
		return nil, err
	}

	s.logger.Info("Tenant registered",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("subdomain", tenant.Subdomain),
		zap.String("owner_id", owner.ID.String()))
	tr := ToTenantResponse(tenant)
	return &RegisterResponse{User: ToUserResponse(owner), Tenant: &tr}, nil
}

func (s *AuthService) issue(user *identity.User) (*TokenResponse, error) {
	pair, err := s.jwt.GenerateTokenPair(auth.Subject{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Username: user.Username,
		Role:     user.Role.String(),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, err
	}
	return &TokenResponse{
		Access:           pair.AccessToken,
		Refresh:          pair.RefreshToken,
		TokenType:        pair.TokenType,
		AccessExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshExpiresAt: pair.RefreshTokenExpiresAt,
	}, nil
}

func (s *AuthService) checkRevoked(ctx context.Context, claims *auth.Claims) error {
	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return err
	}
	if revoked {
		return errTokenRevoked
	}
	invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
	if err != nil {
		return err
	}
	if invalidated {
		return errTokenRevoked
	}
	return nil
}

func newUserFrom(tenantID *uuid.UUID, username, password string, role identity.Role, email, first, last string) (*identity.User, error) {
	user, err := identity.NewUser(tenantID, username, password, role)
	if err != nil {
		return nil, err
	}
	if err := user.SetEmail(email); err != nil {
		return nil, err
	}
	if err := user.SetName(first, last); err != nil {
		return nil, err
	}
	return user, nil
}
