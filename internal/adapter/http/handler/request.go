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

type Request struct {
	service    RequestService
	assignment AssignmentService
	l          logger.Logger
}

type RequestService interface {
	Create(ctx context.Context, req *models.RideRequest) (*models.RideRequest, error)
	List(ctx context.Context, status types.RequestStatus) ([]models.RideRequest, error)
	Get(ctx context.Context, id string) (*models.RideRequest, error)
	Update(ctx context.Context, id string, patch models.RideRequestPatch) (*models.RideRequest, error)
	Start(ctx context.Context, id string) (*models.RideRequest, error)
	Cancel(ctx context.Context, id string) (*models.RideRequest, error)
}

type AssignmentService interface {
	Assign(ctx context.Context, requestID, driverID string) (*models.RideRequest, error)
	Decline(ctx context.Context, requestID string) (*models.RideRequest, error)
}

func NewRequest(service RequestService, assignment AssignmentService, l logger.Logger) *Request {
	return &Request{
		service:    service,
		assignment: assignment,
		l:          l,
	}
}

func (h *Request) Create(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionCreateRequest)

	var createReq dto.CreateRequestReq
	if err := readJSON(w, r, &createReq); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	createReq.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	created, err := h.service.Create(ctx, createReq.ToModel())
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to create ride request", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusCreated, created, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Request) List(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionListRequests)

	status := types.RequestStatus(r.URL.Query().Get("status"))

	requests, err := h.service.List(ctx, status)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list ride requests", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}
	if requests == nil {
		requests = []models.RideRequest{}
	}

	if err := writeJSON(w, http.StatusOK, requests, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Request) Get(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionGetRequest)

	req, err := h.service.Get(ctx, r.PathValue("id"))
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to fetch ride request", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, req, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Request) Update(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionUpdateRequest)

	var patchReq dto.PatchRequestReq
	if err := readJSON(w, r, &patchReq); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	patchReq.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	updated, err := h.service.Update(ctx, r.PathValue("id"), patchReq.RideRequestPatch)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to update ride request", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, updated, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Request) Assign(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionAssignDriver)

	var assignReq dto.AssignReq
	if err := readJSON(w, r, &assignReq); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	assignReq.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	updated, err := h.assignment.Assign(ctx, r.PathValue("id"), assignReq.DriverID)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to assign driver", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, updated, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Request) Decline(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionDeclineRequest)

	updated, err := h.assignment.Decline(ctx, r.PathValue("id"))
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to decline assignment", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, updated, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Request) Start(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionStartTrip)

	updated, err := h.service.Start(ctx, r.PathValue("id"))
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to start trip", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, updated, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Request) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionCancelRequest)

	updated, err := h.service.Cancel(ctx, r.PathValue("id"))
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to cancel ride request", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, updated, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}
