package repository

import (
	"context"

	"medimatch/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByGoogleID(ctx context.Context, db *gorm.DB, googleID string) (*entity.User, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error)
	UpdateRole(ctx context.Context, db *gorm.DB, id int, role entity.Role) error
}
