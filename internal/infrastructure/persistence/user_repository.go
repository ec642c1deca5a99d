package persistence

import (
	"context"
	"strings"

	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/persistence/models"
	"github.com/aqario/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements identity.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID across tenants
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByUsername finds a user by username, case-insensitively
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(username) = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// ExistsByUsername reports whether the username is taken
func (r *GormUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("LOWER(username) = ?", strings.ToLower(strings.TrimSpace(username))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByIDForTenant finds a user of the scope's tenant
func (r *GormUserRepository) FindByIDForTenant(ctx context.Context, scope shared.Scope, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := r.scoped(ctx, scope).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists the users of the scope's tenant
func (r *GormUserRepository) FindAllForTenant(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]identity.User, int64, error) {
	filter = filter.Normalize()
	query := r.scoped(ctx, scope).Model(&models.UserModel{})
	query = applySearch(query, filter.Search, "username", "email", "first_name", "last_name")
	if role, ok := stringFilter(filter, "role"); ok {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var rows []models.UserModel
	query = applyOrder(query, filter, UserSortFields)
	if err := applyPage(query, filter).Find(&rows).Error; err != nil {
		return nil, 0, translateError(err)
	}

	users := make([]identity.User, len(rows))
	for i := range rows {
		users[i] = *rows[i].ToDomain()
	}
	return users, total, nil
}

// SaveForTenant creates or updates a user of the scope's tenant
func (r *GormUserRepository) SaveForTenant(ctx context.Context, scope shared.Scope, user *identity.User) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	if !user.BelongsTo(scope) {
		return shared.ErrForbidden
	}
	model := models.UserModelFromDomain(user)
	return upsert(r.scoped(ctx, scope), model, model.ID)
}

// DeleteForTenant removes a user of the scope's tenant
func (r *GormUserRepository) DeleteForTenant(ctx context.Context, scope shared.Scope, id uuid.UUID) error {
	result := r.scoped(ctx, scope).Delete(&models.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Save creates or updates a user regardless of tenant
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	return upsert(r.db.WithContext(ctx), model, model.ID)
}

func (r *GormUserRepository) scoped(ctx context.Context, scope shared.Scope) *gorm.DB {
	return tenant.ScopedDB(ctx, r.db, scope)
}
