package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(gormDB *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     gormDB,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	// Save writes all columns so cleared token pointers become NULL.
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.UserModel{}, userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrNotFound
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getByColumn(ctx, "email = ?", email)
}

func (r *UserRepository) GetByVerificationTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	return r.getByColumn(ctx, "email_verification_token = ?", tokenHash)
}

func (r *UserRepository) GetByResetTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	return r.getByColumn(ctx, "password_reset_token = ?", tokenHash)
}

func (r *UserRepository) GetByLoginLinkTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	return r.getByColumn(ctx, "login_link_token = ?", tokenHash)
}

func (r *UserRepository) getByColumn(ctx context.Context, query string, value string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, value).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) ExistsByCampusID(ctx context.Context, campusID string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.UserModel{}).Where("campus_id = ?", campusID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check campus ID existence: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{})

	if filter.Role != "" {
		tx = tx.Where("role = ?", filter.Role)
	}
	if filter.Verified != nil {
		tx = tx.Where("email_verified = ?", *filter.Verified)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ? OR campus_id LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var userModels []models.UserModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := tx.Order("created_at DESC").Offset(offset).Limit(filter.PageSize).Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := r.mapper.ToDomain(&userModels[i])
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}

	return users, total, nil
}

func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *UserRepository) CountVerified(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.UserModel{}).Where("email_verified = ?", true).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count verified users: %w", err)
	}
	return count, nil
}
