package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pokeolivos/pokeolivos-api/internal/api/handler/v1/request"
	"github.com/pokeolivos/pokeolivos-api/internal/api/handler/v1/response"
	"github.com/pokeolivos/pokeolivos-api/internal/api/middleware"
	"github.com/pokeolivos/pokeolivos-api/internal/config"
	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/pkg/jwthelper"
	"github.com/pokeolivos/pokeolivos-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, trainerName, rawTrainerCode string) (domain.Profile, error)
	Login(ctx context.Context, email, password string) (domain.Profile, string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	UpdatePassword(ctx context.Context, accountID, newPassword string) error
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignup godoc
// @Summary      Signup a new trainer
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   response.SignupResponse
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	profile, err := h.svc.Signup(ctx.Request.Context(), req.Email, req.Password, req.TrainerName, req.TrainerCode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTrainerCode) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrAccountEmailExists) || errors.Is(err, service.ErrTrainerCodeExists) {
			response.RenderErr(ctx, response.ErrConflict(err))

			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.SignupResponse{
		Message: "account created, awaiting staff approval",
		Profile: profile,
	})
}

// HandleLogin godoc
// @Summary      Login a trainer
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	profile, accountID, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}
		if errors.Is(err, service.ErrAccountDisabled) {
			response.RenderErr(ctx, response.ErrForbidden(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), accountID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:   token,
		Profile: profile,
	})
}

// HandleForgotPassword godoc
// @Summary      Request a password reset
// @Tags         auth
// @Produce      json
// @Param        request   body      request.ForgotPasswordRequest true "request body"
// @Success      202      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) HandleForgotPassword(ctx *gin.Context) {
	req := request.ForgotPasswordRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.RequestPasswordReset(ctx.Request.Context(), req.Email); err != nil {
		err = fmt.Errorf("v1.HandleForgotPassword -> h.svc.RequestPasswordReset -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	// Same answer whether or not the email exists.
	ctx.JSON(http.StatusAccepted, gin.H{
		"message": "if that email is registered, a reset link is on its way",
	})
}

// HandleResetPassword godoc
// @Summary      Reset a password with a reset token
// @Tags         auth
// @Produce      json
// @Param        request   body      request.ResetPasswordRequest true "request body"
// @Success      200      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/reset-password [post]
func (h *AuthHandler) HandleResetPassword(ctx *gin.Context) {
	req := request.ResetPasswordRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.ResetPassword(ctx.Request.Context(), req.Token, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidResetToken) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleResetPassword -> h.svc.ResetPassword -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "password updated",
	})
}

// HandleUpdatePassword godoc
// @Summary      Change the authenticated account's password
// @Tags         auth
// @Produce      json
// @Param        request   body      request.UpdatePasswordRequest true "request body"
// @Success      200      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /me/password [put]
func (h *AuthHandler) HandleUpdatePassword(ctx *gin.Context) {
	req := request.UpdatePasswordRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.UpdatePassword(ctx.Request.Context(), middleware.UserID(ctx), req.Password); err != nil {
		err = fmt.Errorf("v1.HandleUpdatePassword -> h.svc.UpdatePassword -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "password updated",
	})
}
