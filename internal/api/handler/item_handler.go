package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"library-server/internal/api/handler/dto"
	"library-server/internal/domain/item"
	"library-server/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type ItemHandler struct {
	service item.ItemService
	logger  *slog.Logger
}

func NewItemHandler(s item.ItemService, l *slog.Logger) *ItemHandler {
	if s == nil {
		panic("item service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &ItemHandler{
		service: s,
		logger:  l.With("component", "ItemHandler"),
	}
}

// Get handles GET /items/{itemID}
// @Summary Retrieve item details
// @Tags Items
// @Produce json
// @Param itemID path int true "Item ID" Minimum(1)
// @Success 200 {object} dto.ItemResponse "Item details retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid item ID format"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /items/{itemID} [get]
// @Security BearerAuth
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	itemID, err := idFromURL(r, "itemID")
	if err != nil {
		respondError(w, err)
		return
	}

	itm, err := h.service.GetByID(r.Context(), itemID)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to get item", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewItemResponse(itm))
}

// List handles GET /items
// @Summary List all items
// @Tags Items
// @Produce json
// @Success 200 {array} dto.ItemResponse "All items"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /items [get]
// @Security BearerAuth
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list items", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewItemListResponse(items))
}

// FindByTitle handles GET /items/title/{title}
// @Summary Find items by title
// @Tags Items
// @Produce json
// @Param title path string true "Exact title"
// @Success 200 {array} dto.ItemResponse "Items with the given title"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /items/title/{title} [get]
// @Security BearerAuth
func (h *ItemHandler) FindByTitle(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	items, err := h.service.FindByTitle(r.Context(), title)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to find items by title", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewItemListResponse(items))
}

// Create handles POST /items
// @Summary Create a new item
// @Tags Items
// @Accept json
// @Produce json
// @Param request body dto.ItemRequest true "Item creation request"
// @Success 201 {object} dto.ItemResponse "Item successfully created"
// @Failure 400 {object} dto.ErrorResponse "Title or author missing"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /items [post]
// @Security BearerAuth
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ItemRequest
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
		h.logger.Log(r.Context(), level, "Service failed to create item", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Item created successfully", slog.Int64("itemID", created.ID))
	respondJSON(w, http.StatusCreated, dto.NewItemResponse(created))
}

// Upsert handles PUT /items/{itemID}
// @Summary Update or create an item
// @Description Patches genre, age rating, ISBN and shelf code of the item with the given id, or creates a new item from the payload when no such item exists. Title and author never change through this endpoint.
// @Tags Items
// @Accept json
// @Produce json
// @Param itemID path int true "Item ID" Minimum(1)
// @Param request body dto.ItemRequest true "Item patch"
// @Success 200 {object} dto.ItemResponse "Item updated"
// @Success 201 {object} dto.ItemResponse "Item created"
// @Failure 400 {object} dto.ErrorResponse "Title or author missing on create"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /items/{itemID} [put]
// @Security BearerAuth
func (h *ItemHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	itemID, err := idFromURL(r, "itemID")
	if err != nil {
		respondError(w, err)
		return
	}

	var req dto.ItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	result, created, err := h.service.Upsert(r.Context(), itemID, req.ToDomain())
	if err != nil {
		h.logger.WarnContext(r.Context(), "Service failed to upsert item", slog.Any("error", err))
		respondError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, status, dto.NewItemResponse(result))
}

// Delete handles DELETE /items/{itemID}
// @Summary Delete an item
// @Description Deletes the item. Deleting an unknown id is a no-op.
// @Tags Items
// @Produce json
// @Param itemID path int true "Item ID" Minimum(1)
// @Success 200 "Item deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid item ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /items/{itemID} [delete]
// @Security BearerAuth
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID, err := idFromURL(r, "itemID")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), itemID); err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to delete item", slog.Any("error", err))
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
