package handler

import (
	"context"
	"net/http"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/logger"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
)

type Trip struct {
	trips   TripLister
	service TripCompleter
	l       logger.Logger
}

type TripLister interface {
	ListActive(ctx context.Context) ([]models.Trip, error)
}

type TripCompleter interface {
	Complete(ctx context.Context, id string) (*models.RideRequest, error)
}

func NewTrip(trips TripLister, service TripCompleter, l logger.Logger) *Trip {
	return &Trip{
		trips:   trips,
		service: service,
		l:       l,
	}
}

func (h *Trip) ListActive(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_active_trips")

	trips, err := h.trips.ListActive(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list active trips", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}
	if trips == nil {
		trips = []models.Trip{}
	}

	if err := writeJSON(w, http.StatusOK, trips, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Trip) Complete(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionCompleteTrip)

	if _, err := h.service.Complete(ctx, r.PathValue("id")); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to complete trip", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"success": true}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}
