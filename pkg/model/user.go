package model

import (
	"context"
	"time"
)

// User domain object defining a registered account.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Username  string    `gorm:"index;unique" json:"username"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	JoinDate  time.Time `json:"joinDate"`
	IsAdmin   bool      `json:"isAdmin"`
}

type userCtxKey int

var userKey userCtxKey

// NewContextWithUser returns a new [context.Context] that carries user.
func NewContextWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the user stored in ctx, if any. Public routes
// are served without a user so callers have to handle the missing case.
func GetUserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey).(User)
	return user, ok
}
