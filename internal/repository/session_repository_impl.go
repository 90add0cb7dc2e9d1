package repository

import (
	"context"
	"errors"
	"time"

	"medimatch/internal/domain/entity"
	domainRepo "medimatch/internal/domain/repository"

	"gorm.io/gorm"
)

type sessionRepository struct{}

func NewSessionRepository() domainRepo.SessionRepository {
	return &sessionRepository{}
}

func (r *sessionRepository) Create(ctx context.Context, db *gorm.DB, session *entity.Session) error {
	session.ExpiresAt = session.ExpiresAt.In(time.Local)
	return db.WithContext(ctx).Create(session).Error
}

// FindActiveUser returns the owner of sessionID if the session has not expired at now.
// Unknown and expired sessions both yield nil.
func (r *sessionRepository) FindActiveUser(ctx context.Context, db *gorm.DB, sessionID string, now time.Time) (*entity.SessionUser, error) {
	var user entity.SessionUser
	err := db.WithContext(ctx).Table("sessions").
		Select("users.user_id AS id, users.name, users.email, users.role").
		Joins("JOIN users ON users.user_id = sessions.user_id").
		Where("sessions.session_id = ? AND sessions.expires_at >= ?", sessionID, now.In(time.Local)).
		Limit(1).
		Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *sessionRepository) Delete(ctx context.Context, db *gorm.DB, sessionID string) error {
	return db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&entity.Session{}).Error
}
