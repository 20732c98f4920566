package item

// Item is a library medium (book, DVD, ...). Title and author are
// required at creation and immutable through the upsert path.
type Item struct {
	ID        int64  `json:"id,omitempty"`
	Title     string `json:"title,omitempty"`
	Author    string `json:"author,omitempty"`
	Genre     string `json:"genre,omitempty"`
	AgeRating *int16 `json:"ageRating,omitempty"`
	ISBN      *int64 `json:"isbn,omitempty"`
	ShelfCode string `json:"shelfCode,omitempty"`
}

// IsComplete reports whether the fields required for creation are set.
func (i *Item) IsComplete() bool {
	return i != nil && i.Title != "" && i.Author != ""
}
