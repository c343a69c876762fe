package domain

// Book is the canonical record owned by the book service. Author and
// category rows in their own services reference it by ISBN only; nothing
// enforces that the three stay consistent.
type Book struct {
	ID      int64   `json:"id" gorm:"primaryKey"`
	Title   string  `json:"title" gorm:"size:256;not null"`
	ISBN    string  `json:"isbn" gorm:"uniqueIndex;size:32;not null"`
	Price   float64 `json:"price"`
	PubDate string  `json:"pubDate" gorm:"size:32"`
}

func (Book) TableName() string { return "books" }

type Author struct {
	AuthorID   int64  `json:"author_id" gorm:"primaryKey"`
	ISBN       string `json:"isbn" gorm:"index;size:32;not null"`
	AuthorName string `json:"author_name" gorm:"size:256;not null"`
}

func (Author) TableName() string { return "authors" }

type Category struct {
	CategoryID int64  `json:"category_id" gorm:"primaryKey"`
	ISBN       string `json:"isbn" gorm:"index;size:32;not null"`
	Genre      string `json:"genre" gorm:"size:128;not null"`
}

func (Category) TableName() string { return "categories" }

// AuthorRef and CategoryRef are the denormalized views embedded in a
// composite book detail.
type AuthorRef struct {
	AuthorID   int64  `json:"author_id"`
	AuthorName string `json:"author_name"`
}

type CategoryRef struct {
	CategoryID int64  `json:"category_id"`
	Genre      string `json:"genre"`
}

// BookDetails is assembled at request time from the three services, joined
// by ISBN. Author/Category stay nil on the fail-soft list path when the
// owning service could not be reached.
type BookDetails struct {
	Title    string       `json:"title"`
	ISBN     string       `json:"isbn"`
	Price    float64      `json:"price"`
	PubDate  string       `json:"pubDate"`
	Author   *AuthorRef   `json:"author,omitempty"`
	Category *CategoryRef `json:"category,omitempty"`
	Error    string       `json:"error,omitempty"`
}
