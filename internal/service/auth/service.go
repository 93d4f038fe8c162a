package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/logger"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
)

// Service authenticates the single configured operator and issues the
// session tokens the admin console carries as Bearer credentials.
type Service struct {
	username  string
	password  string
	secret    string
	accessTTL time.Duration
	log       logger.Logger
}

func NewService(username, password, secret string, accessTTL time.Duration, log logger.Logger) *Service {
	return &Service{
		username:  username,
		password:  password,
		secret:    secret,
		accessTTL: accessTTL,
		log:       log,
	}
}

// Session is the result of a successful login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Role      string    `json:"role"`
}

// Login checks the operator credential and issues an access token.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	ctx = wrap.WithAction(ctx, types.ActionOperatorLogin)

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return nil, wrap.Error(ctx, types.ErrInvalidCredentials)
	}

	issuedAt := time.Now().UTC()
	expiresAt := issuedAt.Add(s.accessTTL)

	claims := jwt.MapClaims{
		"jti":      uuid.NewString(),
		"username": username,
		"role":     types.RoleOperator.String(),
		"iat":      issuedAt.Unix(),
		"exp":      expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("could not sign token: %w", err))
	}

	s.log.Info(ctx, "operator logged in", "username", username)

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      types.RoleOperator.String(),
	}, nil
}

// VerifyToken validates a Bearer token and returns the operator it names.
func (s *Service) VerifyToken(ctx context.Context, token string) (*models.Operator, error) {
	parsed, err := jwt.ParseWithClaims(token, jwt.MapClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, types.ErrInvalidCredentials
		}
		return []byte(s.secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, wrap.Error(ctx, types.ErrInvalidCredentials)
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, wrap.Error(ctx, types.ErrInvalidCredentials)
	}

	username, _ := mc["username"].(string)
	role, _ := mc["role"].(string)
	if username == "" || role != types.RoleOperator.String() {
		return nil, wrap.Error(ctx, types.ErrInvalidCredentials)
	}

	return &models.Operator{
		Username: username,
		Role:     types.UserRole(role),
	}, nil
}
