package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"library-server/internal/api/handler/dto"
	"library-server/internal/domain/address"
	"library-server/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type AddressHandler struct {
	service address.AddressService
	logger  *slog.Logger
}

func NewAddressHandler(s address.AddressService, l *slog.Logger) *AddressHandler {
	if s == nil {
		panic("address service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &AddressHandler{
		service: s,
		logger:  l.With("component", "AddressHandler"),
	}
}

// List handles GET /addresses
// @Summary List all addresses
// @Tags Addresses
// @Produce json
// @Success 200 {array} dto.AddressResponse "All known addresses"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /addresses [get]
// @Security BearerAuth
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list addresses", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewAddressListResponse(addresses))
}

// FindByZip handles GET /addresses/zip/{zip}
// @Summary Find addresses by zip code
// @Tags Addresses
// @Produce json
// @Param zip path string true "Zip code"
// @Success 200 {array} dto.AddressResponse "Addresses with the given zip"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /addresses/zip/{zip} [get]
// @Security BearerAuth
func (h *AddressHandler) FindByZip(w http.ResponseWriter, r *http.Request) {
	zip := chi.URLParam(r, "zip")

	addresses, err := h.service.FindByZip(r.Context(), zip)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to find addresses by zip", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewAddressListResponse(addresses))
}

// FindByStreet handles GET /addresses/street/{street}
// @Summary Find addresses by street prefix
// @Tags Addresses
// @Produce json
// @Param street path string true "Street prefix"
// @Success 200 {array} dto.AddressResponse "Addresses whose street starts with the prefix"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /addresses/street/{street} [get]
// @Security BearerAuth
func (h *AddressHandler) FindByStreet(w http.ResponseWriter, r *http.Request) {
	street := chi.URLParam(r, "street")

	addresses, err := h.service.FindByStreetPrefix(r.Context(), street)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to find addresses by street", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewAddressListResponse(addresses))
}

// Delete handles DELETE /addresses/{addressID}
// @Summary Delete an address
// @Description Deletes the address unless a customer still references it.
// @Tags Addresses
// @Produce json
// @Param addressID path int true "Address ID" Minimum(1)
// @Success 200 "Address deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid address ID format"
// @Failure 409 {object} dto.ErrorResponse "Address is still referenced by customers"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /addresses/{addressID} [delete]
// @Security BearerAuth
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	addressID, err := idFromURL(r, "addressID")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), addressID); err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrAddressInUse) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to delete address", slog.Any("error", err))
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
