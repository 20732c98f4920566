package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"library-server/internal/api/handler/dto"
	"library-server/internal/domain/item"
	"library-server/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) GetByID(ctx context.Context, itemID int64) (*item.Item, error) {
	args := m.Called(ctx, itemID)
	if itm, ok := args.Get(0).(*item.Item); ok {
		return itm, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemService) FindByTitle(ctx context.Context, title string) ([]*item.Item, error) {
	args := m.Called(ctx, title)
	if items, ok := args.Get(0).([]*item.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemService) ListAll(ctx context.Context) ([]*item.Item, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]*item.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemService) Create(ctx context.Context, data *item.Item) (*item.Item, error) {
	args := m.Called(ctx, data)
	if itm, ok := args.Get(0).(*item.Item); ok {
		return itm, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemService) Upsert(ctx context.Context, itemID int64, patch *item.Item) (*item.Item, bool, error) {
	args := m.Called(ctx, itemID, patch)
	if itm, ok := args.Get(0).(*item.Item); ok {
		return itm, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *MockItemService) Delete(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func storedItem(id int64) *item.Item {
	return &item.Item{
		ID:        id,
		Title:     "Der Prozess",
		Author:    "Franz Kafka",
		Genre:     "Roman",
		ShelfCode: "A-12",
	}
}

func TestItemHandlerGet(t *testing.T) {
	mockService := new(MockItemService)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	handler := NewItemHandler(mockService, logger)

	t.Run("successfully retrieves item details", func(t *testing.T) {
		mockService.On("GetByID", mock.Anything, int64(9)).Return(storedItem(9), nil).Once()

		req := routeContext(httptest.NewRequest(http.MethodGet, "/items/9", nil), "itemID", "9")
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.ItemResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Der Prozess", resp.Title)
		mockService.AssertExpectations(t)
	})

	t.Run("returns not found for an unknown item", func(t *testing.T) {
		mockService.On("GetByID", mock.Anything, int64(99)).
			Return((*item.Item)(nil), fmt.Errorf("%w: item 99", apperrors.ErrNotFound)).Once()

		req := routeContext(httptest.NewRequest(http.MethodGet, "/items/99", nil), "itemID", "99")
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestItemHandlerCreate(t *testing.T) {
	mockService := new(MockItemService)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	handler := NewItemHandler(mockService, logger)

	t.Run("successfully creates an item", func(t *testing.T) {
		mockService.On("Create", mock.Anything, mock.MatchedBy(func(itm *item.Item) bool {
			return itm.Title == "Der Prozess" && itm.Author == "Franz Kafka"
		})).Return(storedItem(9), nil).Once()

		body := bytes.NewBufferString(`{"title": "Der Prozess", "author": "Franz Kafka", "genre": "Roman", "shelfCode": "A-12"}`)
		req := httptest.NewRequest(http.MethodPost, "/items", body)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.ItemResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(9), resp.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("returns bad request when the payload is incomplete", func(t *testing.T) {
		incompleteErr := fmt.Errorf("%w: %w", apperrors.ErrInvalidArgument, apperrors.ErrIncompleteData)
		mockService.On("Create", mock.Anything, mock.Anything).Return((*item.Item)(nil), incompleteErr).Once()

		body := bytes.NewBufferString(`{"title": "Der Prozess"}`)
		req := httptest.NewRequest(http.MethodPost, "/items", body)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp dto.ErrorResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "sent data is incomplete", resp.Error.Message)
		mockService.AssertExpectations(t)
	})
}

func TestItemHandlerUpsert(t *testing.T) {
	mockService := new(MockItemService)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	handler := NewItemHandler(mockService, logger)

	t.Run("returns 200 when an existing item is updated", func(t *testing.T) {
		mockService.On("Upsert", mock.Anything, int64(9), mock.Anything).Return(storedItem(9), false, nil).Once()

		body := bytes.NewBufferString(`{"genre": "Klassiker"}`)
		req := routeContext(httptest.NewRequest(http.MethodPut, "/items/9", body), "itemID", "9")
		rec := httptest.NewRecorder()

		handler.Upsert(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("returns 201 when the item is created", func(t *testing.T) {
		mockService.On("Upsert", mock.Anything, int64(21), mock.Anything).Return(storedItem(21), true, nil).Once()

		body := bytes.NewBufferString(`{"title": "Der Prozess", "author": "Franz Kafka"}`)
		req := routeContext(httptest.NewRequest(http.MethodPut, "/items/21", body), "itemID", "21")
		rec := httptest.NewRecorder()

		handler.Upsert(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestItemHandlerList(t *testing.T) {
	mockService := new(MockItemService)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	handler := NewItemHandler(mockService, logger)

	t.Run("returns all items", func(t *testing.T) {
		mockService.On("ListAll", mock.Anything).Return([]*item.Item{storedItem(9), storedItem(10)}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/items", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.ItemResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp, 2)
		mockService.AssertExpectations(t)
	})
}

func TestItemHandlerDelete(t *testing.T) {
	mockService := new(MockItemService)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	handler := NewItemHandler(mockService, logger)

	t.Run("returns 200 when the item is deleted", func(t *testing.T) {
		mockService.On("Delete", mock.Anything, int64(9)).Return(nil).Once()

		req := routeContext(httptest.NewRequest(http.MethodDelete, "/items/9", nil), "itemID", "9")
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})
}
