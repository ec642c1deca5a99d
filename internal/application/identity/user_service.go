package identity

import (
	"context"
	"time"

	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService manages the users of one tenant
type UserService struct {
	users     identity.UserRepository
	blacklist auth.TokenBlacklist
	// how long a forced sign-out must be remembered: the refresh lifetime
	revokeTTL time.Duration
	logger    *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(users identity.UserRepository, blacklist auth.TokenBlacklist, revokeTTL time.Duration, logger *zap.Logger) *UserService {
	return &UserService{users: users, blacklist: blacklist, revokeTTL: revokeTTL, logger: logger}
}

// List returns the tenant's users; filters: role
func (s *UserService) List(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]UserResponse, int64, error) {
	users, total, err := s.users.FindAllForTenant(ctx, scope, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out, total, nil
}

// Get returns one user of the tenant
func (s *UserService) Get(ctx context.Context, scope shared.Scope, id uuid.UUID) (*UserResponse, error) {
	u, err := s.users.FindByIDForTenant(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(u)
	return &resp, nil
}

// Create adds a user to the tenant. The actor may only grant roles it is
// allowed to assign.
func (s *UserService) Create(ctx context.Context, actor Actor, scope shared.Scope, req CreateUserRequest) (*UserResponse, error) {
	role, err := identity.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	if !actor.Role.CanAssign(role) {
		return nil, shared.NewDomainError("FORBIDDEN", "Role "+actor.Role.String()+" cannot grant "+role.String())
	}

	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A user with that username already exists").
			WithDetail("username", "A user with that username already exists")
	}

	tenantID := scope.TenantID()
	user, err := newUserFrom(&tenantID, req.Username, req.Password, role, req.Email, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}
	if err := s.users.SaveForTenant(ctx, scope, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("tenant_id", tenantID.String()),
		zap.String("role", role.String()),
		zap.String("by", actor.UserID.String()))
	resp := ToUserResponse(user)
	return &resp, nil
}

// Update changes profile fields, role, password or activation
func (s *UserService) Update(ctx context.Context, actor Actor, scope shared.Scope, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.users.FindByIDForTenant(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkManageable(actor, user); err != nil {
		return nil, err
	}

	if req.Email != nil {
		if err := user.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.FirstName != nil || req.LastName != nil {
		first, last := user.FirstName, user.LastName
		if req.FirstName != nil {
			first = *req.FirstName
		}
		if req.LastName != nil {
			last = *req.LastName
		}
		if err := user.SetName(first, last); err != nil {
			return nil, err
		}
	}
	if req.Role != nil {
		role, err := identity.ParseRole(*req.Role)
		if err != nil {
			return nil, err
		}
		if role != user.Role {
			if user.ID == actor.UserID {
				return nil, shared.NewDomainError("FORBIDDEN", "Users cannot change their own role")
			}
			if !actor.Role.CanAssign(role) {
				return nil, shared.NewDomainError("FORBIDDEN", "Role "+actor.Role.String()+" cannot grant "+role.String())
			}
			if err := user.ChangeRole(role); err != nil {
				return nil, err
			}
		}
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}

	signOut := req.Password != nil
	if req.IsActive != nil && *req.IsActive != user.IsActive {
		if *req.IsActive {
			user.Activate()
		} else {
			if user.ID == actor.UserID {
				return nil, shared.NewDomainError("FORBIDDEN", "Users cannot deactivate themselves")
			}
			user.Deactivate()
			signOut = true
		}
	}

	if err := s.users.SaveForTenant(ctx, scope, user); err != nil {
		return nil, err
	}
	if signOut {
		s.revokeSessions(ctx, user.ID)
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Delete removes a user of the tenant and revokes their sessions
func (s *UserService) Delete(ctx context.Context, actor Actor, scope shared.Scope, id uuid.UUID) error {
	if id == actor.UserID {
		return shared.NewDomainError("FORBIDDEN", "Users cannot delete themselves")
	}
	user, err := s.users.FindByIDForTenant(ctx, scope, id)
	if err != nil {
		return err
	}
	if err := s.checkManageable(actor, user); err != nil {
		return err
	}
	if err := s.users.DeleteForTenant(ctx, scope, id); err != nil {
		return err
	}
	s.revokeSessions(ctx, id)
	s.logger.Info("User deleted", zap.String("user_id", id.String()), zap.String("by", actor.UserID.String()))
	return nil
}

// checkManageable stops ADMINs from editing OWNERs
func (s *UserService) checkManageable(actor Actor, target *identity.User) error {
	if target.ID == actor.UserID {
		return nil
	}
	if !actor.Role.CanAssign(target.Role) {
		return shared.NewDomainError("FORBIDDEN", "Role "+actor.Role.String()+" cannot manage "+target.Role.String()+" users")
	}
	return nil
}

func (s *UserService) revokeSessions(ctx context.Context, userID uuid.UUID) {
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), s.revokeTTL); err != nil {
		s.logger.Error("Failed to revoke user sessions", zap.String("user_id", userID.String()), zap.Error(err))
	}
}
