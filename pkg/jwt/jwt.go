package jwt

import (
	"errors"
	"time"

	"medimatch/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const stateIssuer = "medimatch"

var ErrInvalidState = errors.New("invalid state token")

// StateClaims travel through the OAuth provider as the state parameter.
type StateClaims struct {
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

// StateService signs and verifies OAuth state tokens.
type StateService struct {
	config config.StateConfig
	now    func() time.Time
}

func NewStateService(cfg config.StateConfig) *StateService {
	return &StateService{config: cfg, now: time.Now}
}

// Generate returns a signed state token and the nonce embedded in it.
func (s *StateService) Generate() (string, string, error) {
	nonce := uuid.New().String()
	now := s.now()
	claims := StateClaims{
		Nonce: nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    stateIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, nonce, nil
}

func (s *StateService) Validate(tokenString string) (*StateClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StateClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	}, jwt.WithIssuer(stateIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, ErrInvalidState
	}

	claims, ok := token.Claims.(*StateClaims)
	if !ok || !token.Valid || claims.Nonce == "" {
		return nil, ErrInvalidState
	}

	return claims, nil
}

func (s *StateService) GetExpiry() time.Duration {
	return s.config.Expiry
}
