package usecase

import (
	"context"
	"time"

	"medimatch/internal/converter"
	"medimatch/internal/delivery/dto"
	"medimatch/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SessionUsecase interface {
	GetCurrentUser(ctx context.Context, token string) (*dto.CurrentUser, error)
}

type sessionUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	sessionRepo repository.SessionRepository
	now         func() time.Time
}

func NewSessionUsecase(db *gorm.DB, log *logrus.Logger, sessionRepo repository.SessionRepository) SessionUsecase {
	return &sessionUsecase{
		db:          db,
		log:         log,
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

// GetCurrentUser resolves a session token to its owner.
// An empty, unknown or expired token yields nil without an error.
func (u *sessionUsecase) GetCurrentUser(ctx context.Context, token string) (*dto.CurrentUser, error) {
	if token == "" {
		return nil, nil
	}

	user, err := u.sessionRepo.FindActiveUser(ctx, u.db, token, u.now())
	if err != nil {
		u.log.Warnf("Failed to resolve session: %+v", err)
		return nil, err
	}

	return converter.SessionUserToCurrentUser(user), nil
}
