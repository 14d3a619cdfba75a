package middleware

import (
	"github.com/daygrid/scheduler/internal/errdef"
	"github.com/daygrid/scheduler/pkg/model"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the cookie carrying the session id.
const SessionCookie = "sessionId"

func NewAuthentication(sessions sessionService) AuthenticationMiddleware {
	return AuthenticationMiddleware{sessions: sessions}
}

type sessionService interface {
	Find(id string) (*model.User, error)
}

type AuthenticationMiddleware struct {
	sessions sessionService
}

// ResolveSession puts the session user on the context if the request
// carries a valid session cookie. It never rejects; public routes serve
// anonymous and signed-in requests alike.
func (m AuthenticationMiddleware) ResolveSession(c *gin.Context) {
	if user := m.resolve(c); user != nil {
		setUser(c, user)
	}
	c.Next()
}

// RequireSession rejects requests without a valid session.
func (m AuthenticationMiddleware) RequireSession(c *gin.Context) {
	user := m.resolve(c)
	if user == nil {
		_ = c.Error(errdef.NewUnauthorized("login required"))
		c.Abort()
		return
	}

	setUser(c, user)

	// Extra precaution to ensure that no errors has occurred, and it's safe to call c.Next()
	if len(c.Errors.Errors()) > 0 {
		c.Abort()
	} else {
		c.Next()
	}
}

func (m AuthenticationMiddleware) resolve(c *gin.Context) *model.User {
	id, err := c.Cookie(SessionCookie)
	if err != nil || id == "" {
		return nil
	}

	user, err := m.sessions.Find(id)
	if err != nil {
		return nil
	}
	return user
}

func setUser(c *gin.Context, user *model.User) {
	c.Set("user", user)
	ctx := model.NewContextWithUser(c.Request.Context(), *user)
	c.Request = c.Request.WithContext(ctx)
}
