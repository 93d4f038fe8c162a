package middleware

import (
	"context"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/pkg/logger"
)

type (
	AuthService interface {
		VerifyToken(ctx context.Context, token string) (*models.Operator, error)
	}

	Middleware struct {
		auth       AuthService
		corsOrigin string
		log        logger.Logger
	}
)

func NewMiddleware(auth AuthService, corsOrigin string, log logger.Logger) *Middleware {
	return &Middleware{
		auth:       auth,
		corsOrigin: corsOrigin,
		log:        log,
	}
}
