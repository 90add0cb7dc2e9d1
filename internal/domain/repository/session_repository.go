package repository

import (
	"context"
	"time"

	"medimatch/internal/domain/entity"

	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, db *gorm.DB, session *entity.Session) error
	FindActiveUser(ctx context.Context, db *gorm.DB, sessionID string, now time.Time) (*entity.SessionUser, error)
	Delete(ctx context.Context, db *gorm.DB, sessionID string) error
}
