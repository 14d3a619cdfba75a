package model

import (
	"fmt"
	"time"
)

// Category tags the kind of resource an access decision or repository
// lookup applies to.
type Category string

const (
	CategoryEvent     Category = "event"
	CategoryCommunity Category = "community"
	CategoryNotice    Category = "notice"
)

// ParsePostCategory maps the board type supplied by the client onto a
// Category. Only the two board categories are valid here.
func ParsePostCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryCommunity, CategoryNotice:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown board type %q", s)
}

// Post domain object shared by the community and notice boards. The two
// boards live in separate, identically shaped tables; the owning table is
// resolved from the Category at the repository boundary and is not a
// column on the row itself.
type Post struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uint      `json:"-"`
}
