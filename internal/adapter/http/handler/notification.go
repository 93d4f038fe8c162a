package handler

import (
	"context"
	"net/http"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/logger"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
)

type Notification struct {
	service NotificationService
	l       logger.Logger
}

type NotificationService interface {
	ListOps(ctx context.Context) ([]models.Notification, error)
	ListDriver(ctx context.Context, driverName string) ([]models.Notification, error)
	MarkOpsRead(ctx context.Context, id string) error
	MarkDriverRead(ctx context.Context, id string) error
}

func NewNotification(service NotificationService, l logger.Logger) *Notification {
	return &Notification{
		service: service,
		l:       l,
	}
}

func (h *Notification) ListOps(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_notifications")

	notifications, err := h.service.ListOps(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list notifications", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}

	if err := writeJSON(w, http.StatusOK, notifications, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Notification) ListDriver(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithDriver(wrap.WithAction(r.Context(), "list_driver_notifications"), r.PathValue("driverName"))

	notifications, err := h.service.ListDriver(ctx, r.PathValue("driverName"))
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list driver notifications", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}

	if err := writeJSON(w, http.StatusOK, notifications, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Notification) MarkOpsRead(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionMarkRead)
	h.markRead(ctx, w, r, h.service.MarkOpsRead)
}

func (h *Notification) MarkDriverRead(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionMarkRead)
	h.markRead(ctx, w, r, h.service.MarkDriverRead)
}

func (h *Notification) markRead(ctx context.Context, w http.ResponseWriter, r *http.Request, mark func(context.Context, string) error) {
	if err := mark(ctx, r.PathValue("id")); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to mark notification read", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"success": true}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}
