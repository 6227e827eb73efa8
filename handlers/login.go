// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/enstack-letters/auth"
	"github.com/danielhkuo/enstack-letters/logging"
	"github.com/danielhkuo/enstack-letters/metrics"
	"github.com/danielhkuo/enstack-letters/middleware"
	"github.com/danielhkuo/enstack-letters/models"
	"github.com/danielhkuo/enstack-letters/validation"
)

type LoginHandler struct{}

func NewLoginHandler() *LoginHandler {
	return &LoginHandler{}
}

// Login handles POST /api/login. It only checks the credentials' shape; no
// session is created.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeRequest(w, r, &req) {
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		middleware.ValidationErrorResponse(w, verr)
		return
	}

	if err := auth.CheckLogin(*req.Username, *req.Password); err != nil {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		logging.Ctx(r.Context()).Debug().Err(err).Msg("login rejected")
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Login successful"})
}
