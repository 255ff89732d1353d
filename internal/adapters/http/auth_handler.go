// Package http
package http

import (
	"errors"
	"net/http"

	"inkwell/internal/adapters/http/request"
	"inkwell/internal/adapters/http/response"
	"inkwell/internal/adapters/http/validator"
	"inkwell/internal/domain"
	"inkwell/internal/logger"
)

type tokenResponse struct {
	JWT string `json:"jwt"`
}

type AuthHandler struct {
	svc domain.AuthService
	log logger.Logger

	decoder   request.RequestDecoder
	writer    response.ResponseWriter
	validator validator.Validator
}

func NewAuthHandler(
	svc domain.AuthService,
	log logger.Logger,
	d request.RequestDecoder,
	w response.ResponseWriter,
	v validator.Validator,
) *AuthHandler {
	return &AuthHandler{
		svc:       svc,
		log:       log,
		decoder:   d,
		writer:    w,
		validator: v,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req domain.SignupRequest
	if err := h.decoder.Decode(r, &req); err != nil {
		h.writer.WriteError(w, http.StatusBadRequest, response.MsgInvalidInput)
		return
	}

	if errs := h.validator.Validate(&req); len(errs) > 0 {
		h.writer.WriteValidationError(w, errs)
		return
	}

	res, err := h.svc.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			h.writer.WriteError(w, http.StatusConflict, "email already registered")
			return
		}

		h.log.Error("auth: signup failed", "error", err)
		h.writer.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.writer.Write(w, http.StatusOK, &tokenResponse{JWT: res.Token})
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req domain.SigninRequest
	if err := h.decoder.Decode(r, &req); err != nil {
		h.writer.WriteError(w, http.StatusBadRequest, response.MsgInvalidInput)
		return
	}

	if errs := h.validator.Validate(&req); len(errs) > 0 {
		h.writer.WriteValidationError(w, errs)
		return
	}

	res, err := h.svc.Signin(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.writer.WriteError(w, http.StatusForbidden, "user not found")
			return
		}

		h.log.Error("auth: signin failed", "error", err)
		h.writer.WriteError(w, http.StatusInternalServerError, "failed to sign in")
		return
	}

	h.writer.Write(w, http.StatusOK, &tokenResponse{JWT: res.Token})
}
