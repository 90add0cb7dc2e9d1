package repository

import (
	"context"
	"errors"

	"medimatch/internal/domain/entity"
	domainRepo "medimatch/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	if user.Role == "" {
		user.Role = entity.RoleUser
	}
	return db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByGoogleID(ctx context.Context, db *gorm.DB, googleID string) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("user_id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, db *gorm.DB, id int, role entity.Role) error {
	return db.WithContext(ctx).Model(&entity.User{}).
		Where("user_id = ?", id).
		Update("role", role).Error
}
