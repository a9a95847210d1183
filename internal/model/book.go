package model

// Book is a catalog entry with bibliographic metadata and an optional synopsis.
// Tags describe the persisted row; the same struct is serialized on the HTTP boundary.
type Book struct {
	ID            int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string  `json:"title" gorm:"not null;index"`
	Author        string  `json:"author" gorm:"not null"`
	Genre         string  `json:"genre" gorm:"not null"`
	YearPublished int     `json:"year_published" gorm:"not null"`
	Summary       *string `json:"summary" gorm:"type:text"`
	CoverKey      *string `json:"-"`
}

// HasCover reports whether an uploaded cover is attached to the book.
func (b *Book) HasCover() bool {
	return b.CoverKey != nil && *b.CoverKey != ""
}

// RatedBook is a book together with the mean rating of its reviews (0 when unreviewed).
type RatedBook struct {
	Book
	AverageRating float64 `json:"average_rating"`
}
