package dto

import (
	"library-server/internal/domain/item"
)

type ItemRequest struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	AgeRating *int16 `json:"ageRating"`
	ISBN      *int64 `json:"isbn"`
	ShelfCode string `json:"shelfCode"`
}

func (r *ItemRequest) ToDomain() *item.Item {
	return &item.Item{
		Title:     r.Title,
		Author:    r.Author,
		Genre:     r.Genre,
		AgeRating: r.AgeRating,
		ISBN:      r.ISBN,
		ShelfCode: r.ShelfCode,
	}
}

type ItemResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre,omitempty"`
	AgeRating *int16 `json:"ageRating,omitempty"`
	ISBN      *int64 `json:"isbn,omitempty"`
	ShelfCode string `json:"shelfCode,omitempty"`
}

func NewItemResponse(itm *item.Item) ItemResponse {
	if itm == nil {
		return ItemResponse{}
	}
	return ItemResponse{
		ID:        itm.ID,
		Title:     itm.Title,
		Author:    itm.Author,
		Genre:     itm.Genre,
		AgeRating: itm.AgeRating,
		ISBN:      itm.ISBN,
		ShelfCode: itm.ShelfCode,
	}
}

func NewItemListResponse(items []*item.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, itm := range items {
		out = append(out, NewItemResponse(itm))
	}
	return out
}
