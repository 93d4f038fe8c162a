package handler

import (
	"context"
	"net/http"

	"github.com/teleka/teleka-taxi/internal/adapter/http/handler/dto"
	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/logger"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
	"github.com/teleka/teleka-taxi/pkg/validator"
)

type Driver struct {
	service DriverService
	stats   StatsGetter
	l       logger.Logger
}

type DriverService interface {
	Register(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	Approve(ctx context.Context, id string) (*models.Driver, error)
	Reject(ctx context.Context, id string) (*models.Driver, error)
	List(ctx context.Context) ([]models.Driver, error)
	Get(ctx context.Context, id string) (*models.Driver, error)
}

type StatsGetter interface {
	Get(ctx context.Context) (*models.DriverStats, error)
}

func NewDriver(service DriverService, stats StatsGetter, l logger.Logger) *Driver {
	return &Driver{
		service: service,
		stats:   stats,
		l:       l,
	}
}

func (h *Driver) List(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_drivers")

	drivers, err := h.service.List(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list drivers", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}
	if drivers == nil {
		drivers = []models.Driver{}
	}

	if err := writeJSON(w, http.StatusOK, drivers, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Driver) Register(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionRegisterDriver)

	var registerReq dto.RegisterDriverReq
	if err := readJSON(w, r, &registerReq); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	registerReq.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	driver, err := h.service.Register(ctx, registerReq.ToModel())
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to register driver", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusCreated, driver, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Driver) Approve(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionApproveDriver)
	h.judge(ctx, w, r, h.service.Approve)
}

func (h *Driver) Reject(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionRejectDriver)
	h.judge(ctx, w, r, h.service.Reject)
}

func (h *Driver) judge(ctx context.Context, w http.ResponseWriter, r *http.Request, decide func(context.Context, string) (*models.Driver, error)) {
	driver, err := decide(ctx, r.PathValue("id"))
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to settle driver registration", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, driver, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

// Stats serves the denormalized driver dashboard summary.
func (h *Driver) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_driver_stats")

	stats, err := h.stats.Get(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to fetch driver stats", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}
