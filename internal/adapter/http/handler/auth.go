package handler

import (
	"context"
	"net/http"

	"github.com/teleka/teleka-taxi/internal/adapter/http/handler/dto"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/internal/service/auth"
	"github.com/teleka/teleka-taxi/pkg/logger"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
	"github.com/teleka/teleka-taxi/pkg/validator"
)

type Auth struct {
	service AuthService
	l       logger.Logger
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*auth.Session, error)
}

func NewAuth(service AuthService, l logger.Logger) *Auth {
	return &Auth{
		service: service,
		l:       l,
	}
}

func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionOperatorLogin)

	var loginReq dto.LoginReq
	if err := readJSON(w, r, &loginReq); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	loginReq.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	session, err := h.service.Login(ctx, loginReq.Username, loginReq.Password)
	if err != nil {
		h.l.Warn(ctx, "operator login rejected")
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, session, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}
