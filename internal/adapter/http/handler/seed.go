package handler

import (
	"context"
	"net/http"

	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/logger"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
)

type Seed struct {
	service SeedService
	l       logger.Logger
}

type SeedService interface {
	Initialize(ctx context.Context) error
}

func NewSeed(service SeedService, l logger.Logger) *Seed {
	return &Seed{
		service: service,
		l:       l,
	}
}

func (h *Seed) Initialize(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionSeedData)

	if err := h.service.Initialize(ctx); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to initialize sample data", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"message": "Sample data initialized successfully"}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}
