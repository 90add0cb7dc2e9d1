package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"medimatch/internal/converter"
	"medimatch/internal/delivery/dto"
	"medimatch/internal/domain/entity"
	"medimatch/internal/domain/repository"
	"medimatch/internal/service"
	"medimatch/pkg/jwt"
	"medimatch/pkg/oauth"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidState      = errors.New("invalid or expired login state")
	ErrIdentityRejected  = errors.New("google login could not be verified")
	ErrSessionNotCreated = errors.New("failed to create session")
)

const sessionIDBytes = 32

// IdentityProvider authenticates users against an external OAuth provider.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth.Identity, error)
}

type AuthUsecase interface {
	BeginGoogleLogin(ctx context.Context) (string, error)
	CompleteGoogleLogin(ctx context.Context, code, state string) (*dto.LoginResult, error)
	Logout(ctx context.Context, userID int, sessionID string) error
	GetActivity(ctx context.Context, userID int, limit int) (*dto.ActivityListResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	stateService *jwt.StateService
	stateStore   service.StateStore
	provider     IdentityProvider
	auditService service.AuditService
	sessionTTL   time.Duration
	now          func() time.Time
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	stateService *jwt.StateService,
	stateStore service.StateStore,
	provider IdentityProvider,
	auditService service.AuditService,
	sessionTTL time.Duration,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		stateService: stateService,
		stateStore:   stateStore,
		provider:     provider,
		auditService: auditService,
		sessionTTL:   sessionTTL,
		now:          time.Now,
	}
}

// BeginGoogleLogin returns the Google consent URL for a fresh single-use state.
func (u *authUsecase) BeginGoogleLogin(ctx context.Context) (string, error) {
	state, nonce, err := u.stateService.Generate()
	if err != nil {
		u.log.Warnf("Failed to sign login state: %+v", err)
		return "", err
	}

	if err := u.stateStore.Save(ctx, nonce, u.stateService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to store login state: %+v", err)
		return "", err
	}

	return u.provider.AuthCodeURL(state), nil
}

// CompleteGoogleLogin verifies the callback, creates the user on first login
// and opens a new session.
func (u *authUsecase) CompleteGoogleLogin(ctx context.Context, code, state string) (*dto.LoginResult, error) {
	claims, err := u.stateService.Validate(state)
	if err != nil {
		return nil, ErrInvalidState
	}

	fresh, err := u.stateStore.Consume(ctx, claims.Nonce)
	if err != nil {
		u.log.Warnf("Failed to consume login state: %+v", err)
		return nil, err
	}
	if !fresh {
		return nil, ErrInvalidState
	}

	identity, err := u.provider.Exchange(ctx, code)
	if err != nil {
		u.log.Warnf("Failed to exchange google code: %+v", err)
		return nil, ErrIdentityRejected
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByGoogleID(ctx, tx, identity.Subject)
	if err != nil {
		u.log.Warnf("Failed to find user by google id: %+v", err)
		return nil, err
	}

	isNewUser := user == nil
	if isNewUser {
		user = &entity.User{
			GoogleID: identity.Subject,
			Name:     identity.Name,
			Email:    identity.Email,
			Picture:  identity.Picture,
			Role:     entity.RoleUser,
		}
		if err := u.userRepo.Create(ctx, tx, user); err != nil {
			u.log.Warnf("Failed to create user: %+v", err)
			return nil, err
		}
		if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", user.ID, entity.JSON{
			"email": user.Email,
		}); err != nil {
			return nil, err
		}
	}

	sessionID, err := newSessionID()
	if err != nil {
		u.log.Warnf("Failed to generate session id: %+v", err)
		return nil, ErrSessionNotCreated
	}

	session := &entity.Session{
		ID:        sessionID,
		UserID:    user.ID,
		ExpiresAt: u.now().Add(u.sessionTTL),
	}
	if err := u.sessionRepo.Create(ctx, tx, session); err != nil {
		u.log.Warnf("Failed to create session: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserLogin, "session", user.ID, entity.JSON{
		"expires_at": session.ExpiresAt,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.LoginResult{
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
		IsNewUser: isNewUser,
		Role:      string(user.Role),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID int, sessionID string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.sessionRepo.Delete(ctx, tx, sessionID); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionUserLogout, "session", userID); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *authUsecase) GetActivity(ctx context.Context, userID int, limit int) (*dto.ActivityListResponse, error) {
	logs, err := u.auditService.RecentActivity(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	return &dto.ActivityListResponse{
		Activities: converter.AuditLogsToActivities(logs),
		Total:      len(logs),
	}, nil
}

// newSessionID returns 32 random bytes, hex encoded.
func newSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
