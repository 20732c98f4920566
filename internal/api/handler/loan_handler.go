package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"library-server/internal/api/handler/dto"
	"library-server/internal/domain/loan"
	"library-server/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type LoanHandler struct {
	service loan.LoanService
	logger  *slog.Logger
}

func NewLoanHandler(s loan.LoanService, l *slog.Logger) *LoanHandler {
	if s == nil {
		panic("loan service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &LoanHandler{
		service: s,
		logger:  l.With("component", "LoanHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, message, field := http.StatusInternalServerError, "An unexpected error occurred.", ""
	var validationError *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, apperrors.ErrItemOnLoan), errors.Is(err, apperrors.ErrAddressInUse), errors.Is(err, apperrors.ErrConflict):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found."
	case errors.Is(err, apperrors.ErrIncompleteData):
		status, message = http.StatusBadRequest, apperrors.ErrIncompleteData.Error()
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "Unauthorized."
	case errors.As(err, &validationError):
		status, message, field = http.StatusBadRequest, validationError.Message, validationError.Field
	case errors.As(err, &appErr):
		message = appErr.Error()
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	resp := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Message: message,
			Field:   field,
		},
	}
	respondJSON(w, status, resp)
}

func idFromURL(r *http.Request, name string) (int64, error) {
	idStr := chi.URLParam(r, name)
	if idStr == "" {
		return 0, fmt.Errorf("%w: %s not found in URL path", apperrors.ErrInvalidArgument, name)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s format in URL path: %s", apperrors.ErrInvalidArgument, name, idStr)
	}
	return id, nil
}

// FindByItem handles GET /loans/item/{itemID}
// @Summary List active loans for an item
// @Description Returns the active loans for the given item id. The list is empty when the item is not on loan.
// @Tags Loans
// @Produce json
// @Param itemID path int true "Item ID" Minimum(1)
// @Success 200 {array} dto.LoanResponse "Active loans for the item"
// @Failure 400 {object} dto.ErrorResponse "Invalid item ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans/item/{itemID} [get]
// @Security BearerAuth
func (h *LoanHandler) FindByItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := idFromURL(r, "itemID")
	if err != nil {
		respondError(w, err)
		return
	}

	loans, err := h.service.FindByItemID(r.Context(), itemID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to find loans by item", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewLoanListResponse(loans))
}

// Create handles POST /loans
// @Summary Loan an item to a customer
// @Description Creates a loan for the referenced customer and item. An item that is already on loan is rejected as a conflict, and the conflict outranks missing references.
// @Tags Loans
// @Accept json
// @Produce json
// @Param request body dto.LoanRequest true "Loan creation request"
// @Success 201 {object} dto.LoanResponse "Loan successfully created"
// @Failure 400 {object} dto.ErrorResponse "Incomplete loan references"
// @Failure 404 {object} dto.ErrorResponse "Referenced customer or item does not exist"
// @Failure 409 {object} dto.ErrorResponse "Item is already on loan"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans [post]
// @Security BearerAuth
func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.LoanRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	created, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrItemOnLoan) && !errors.Is(err, apperrors.ErrInvalidArgument) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to create loan", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.NewLoanResponse(created))
}

// Upsert handles PUT /loans/{loanID}
// @Summary Update or create a loan
// @Description Updates the duration of the loan with the given id, or creates a new loan from the payload when no such loan exists.
// @Tags Loans
// @Accept json
// @Produce json
// @Param loanID path int true "Loan ID" Minimum(1)
// @Param request body dto.LoanRequest true "Loan patch"
// @Success 200 {object} dto.LoanResponse "Loan updated"
// @Success 201 {object} dto.LoanResponse "Loan created"
// @Failure 400 {object} dto.ErrorResponse "Incomplete loan references on create"
// @Failure 409 {object} dto.ErrorResponse "Item is already on loan"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans/{loanID} [put]
// @Security BearerAuth
func (h *LoanHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	loanID, err := idFromURL(r, "loanID")
	if err != nil {
		respondError(w, err)
		return
	}

	var req dto.LoanRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	result, created, err := h.service.Upsert(r.Context(), loanID, req.ToDomain())
	if err != nil {
		h.logger.WarnContext(r.Context(), "Service failed to upsert loan", slog.Any("error", err))
		respondError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, status, dto.NewLoanResponse(result))
}

// DeleteByItem handles DELETE /loans/item/{itemID}
// @Summary Return an item
// @Description Removes the active loan for the given item id. Returning an item that is not on loan is a no-op.
// @Tags Loans
// @Produce json
// @Param itemID path int true "Item ID" Minimum(1)
// @Success 200 "Item returned"
// @Failure 400 {object} dto.ErrorResponse "Invalid item ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans/item/{itemID} [delete]
// @Security BearerAuth
func (h *LoanHandler) DeleteByItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := idFromURL(r, "itemID")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.service.DeleteByItemID(r.Context(), itemID); err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to return item", slog.Any("error", err))
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
