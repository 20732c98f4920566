package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"library-server/internal/api/handler/dto"
	"library-server/internal/config"
	"library-server/internal/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct {
	cfg    config.Config
	logger *slog.Logger
}

func NewAuthHandler(cfg config.Config, l *slog.Logger) *AuthHandler {
	return &AuthHandler{
		cfg:    cfg,
		logger: l.With("component", "AuthHandler"),
	}
}

// GenerateBearerToken handles POST /auth/token
// @Summary Generate a JWT bearer token
// @Description Issues a signed bearer token for the given username.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "username"
// @Success 200 {object} map[string]string "Token successfully generated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/token [post]
func (h *AuthHandler) GenerateBearerToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request body", "error", err)
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if req.Username == "" {
		h.logger.Warn("username is required")
		respondError(w, fmt.Errorf("%w: username is required", apperrors.ErrInvalidArgument))
		return
	}

	claims := jwt.MapClaims{
		"username": req.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(h.cfg.Server.Auth.JWTSecret))
	if err != nil {
		h.logger.Error("failed to sign token", "error", err)
		respondError(w, fmt.Errorf("%w: failed to sign token", apperrors.ErrInternalServer))
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": fmt.Sprintf("Bearer %s", tokenString)})
}
