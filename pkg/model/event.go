package model

import "time"

// Event domain object defining a calendar entry. Date and Time are kept as
// the wire strings ("YYYY-MM-DD", "HH:MM") since the calendar operates on
// calendar dates, not instants.
type Event struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Date      string    `gorm:"size:10;index" json:"date"`
	Time      string    `gorm:"size:5" json:"time"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Important bool      `json:"important"`
	IsPrivate bool      `json:"is_private"`
	AuthorID  uint      `json:"-"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}
