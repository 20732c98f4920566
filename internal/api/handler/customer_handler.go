package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"library-server/internal/api/handler/dto"
	"library-server/internal/domain/customer"
	"library-server/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

// Get handles GET /customers/{customerID}
// @Summary Retrieve customer details
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Success 200 {object} dto.CustomerResponse "Customer details retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID format"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [get]
// @Security BearerAuth
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID, err := idFromURL(r, "customerID")
	if err != nil {
		respondError(w, err)
		return
	}

	cust, err := h.service.GetByID(r.Context(), customerID)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to get customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(cust))
}

// FindByLastName handles GET /customers/lastname/{lastName}
// @Summary Find customers by last name
// @Tags Customers
// @Produce json
// @Param lastName path string true "Last name"
// @Success 200 {array} dto.CustomerResponse "Customers with the given last name"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/lastname/{lastName} [get]
// @Security BearerAuth
func (h *CustomerHandler) FindByLastName(w http.ResponseWriter, r *http.Request) {
	lastName := chi.URLParam(r, "lastName")

	customers, err := h.service.FindByLastName(r.Context(), lastName)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to find customers by last name", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerListResponse(customers))
}

// FindByAddress handles GET /customers/address/{addressID}
// @Summary Find customers living at an address
// @Tags Customers
// @Produce json
// @Param addressID path int true "Address ID" Minimum(1)
// @Success 200 {array} dto.CustomerResponse "Customers referencing the address"
// @Failure 400 {object} dto.ErrorResponse "Invalid address ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/address/{addressID} [get]
// @Security BearerAuth
func (h *CustomerHandler) FindByAddress(w http.ResponseWriter, r *http.Request) {
	addressID, err := idFromURL(r, "addressID")
	if err != nil {
		respondError(w, err)
		return
	}

	customers, err := h.service.FindByAddressID(r.Context(), addressID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to find customers by address", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerListResponse(customers))
}

// FindByStreet handles GET /customers/street/{street}
// @Summary Find customers by street prefix
// @Tags Customers
// @Produce json
// @Param street path string true "Street prefix"
// @Success 200 {array} dto.CustomerResponse "Customers whose street starts with the prefix"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/street/{street} [get]
// @Security BearerAuth
func (h *CustomerHandler) FindByStreet(w http.ResponseWriter, r *http.Request) {
	street := chi.URLParam(r, "street")

	customers, err := h.service.FindByStreet(r.Context(), street)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to find customers by street", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerListResponse(customers))
}

// Create handles POST /customers
// @Summary Create a new customer
// @Description Creates a customer. The embedded address is resolved against existing rows on (street, zip) before a new one is inserted.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CustomerRequest true "Customer creation request"
// @Success 201 {object} dto.CustomerResponse "Customer successfully created"
// @Failure 400 {object} dto.ErrorResponse "Sent data is incomplete"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers [post]
// @Security BearerAuth
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer request")

	var req dto.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	created, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrInvalidArgument) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to create customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer created successfully", slog.Int64("customerID", created.ID))
	respondJSON(w, http.StatusCreated, dto.NewCustomerResponse(created))
}

// Upsert handles PUT /customers/{customerID}
// @Summary Update or create a customer
// @Description Patches email and address of the customer with the given id, or creates a new customer from the payload when no such customer exists.
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Param request body dto.CustomerRequest true "Customer patch"
// @Success 200 {object} dto.CustomerResponse "Customer updated"
// @Success 201 {object} dto.CustomerResponse "Customer created"
// @Failure 400 {object} dto.ErrorResponse "Sent data is incomplete on create"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [put]
// @Security BearerAuth
func (h *CustomerHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	customerID, err := idFromURL(r, "customerID")
	if err != nil {
		respondError(w, err)
		return
	}

	var req dto.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	result, created, err := h.service.Upsert(r.Context(), customerID, req.ToDomain())
	if err != nil {
		h.logger.WarnContext(r.Context(), "Service failed to upsert customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, status, dto.NewCustomerResponse(result))
}

// Delete handles DELETE /customers/{customerID}
// @Summary Delete a customer
// @Description Deletes the customer. Deleting an unknown id is a no-op.
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Success 200 "Customer deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [delete]
// @Security BearerAuth
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	customerID, err := idFromURL(r, "customerID")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), customerID); err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to delete customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
