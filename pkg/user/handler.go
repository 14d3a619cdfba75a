package user

import (
	"context"
	"net/http"
	"time"

	"github.com/daygrid/scheduler/internal/handler"
	"github.com/daygrid/scheduler/internal/middleware"
	"github.com/daygrid/scheduler/pkg/config"
	"github.com/daygrid/scheduler/pkg/model"

	"github.com/gin-gonic/gin"
)

func NewHandler(config config.Config, userService userService, sessionService sessionService) Handler {
	return Handler{
		config:         config,
		userService:    userService,
		sessionService: sessionService,
	}
}

type Handler struct {
	config         config.Config
	userService    userService
	sessionService sessionService
}

type userService interface {
	SignUp(ctx context.Context, username, password, name string) (*model.User, error)
	SignIn(ctx context.Context, username, password string) (*model.User, error)
	FindById(ctx context.Context, id uint) (*model.User, error)
}

type sessionService interface {
	Create(user *model.User) (string, error)
	SignOut(userID uint) error
	TTL() time.Duration
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Password string `json:"password" binding:"required,gte=8,lte=128"`
	Name     string `json:"name" binding:"required,max=64"`
}

// Register creates a new account. Usernames are unique; a taken username
// is reported as a conflict.
func (h Handler) Register(c *gin.Context) {
	var request RegisterRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.SignUp(c.Request.Context(), request.Username, request.Password, request.Name)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

type SignInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignIn verifies the credentials and opens a session. The session id
// travels as a cookie; the response body carries the signed-in user.
func (h Handler) SignIn(c *gin.Context) {
	var request SignInRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.SignIn(c.Request.Context(), request.Username, request.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	id, err := h.sessionService.Create(user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	maxAge := int(h.sessionService.TTL().Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, id, maxAge, "/", h.config.Hostname, true, true)

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

// SignOut drops every session of the current user and clears the cookie.
func (h Handler) SignOut(c *gin.Context) {
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.sessionService.SignOut(user.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", h.config.Hostname, true, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AuthCheck reports the session state. It never fails; an anonymous
// request gets isLoggedIn=false and a null user.
func (h Handler) AuthCheck(c *gin.Context) {
	user, ok := handler.LookupUser(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"isLoggedIn": false, "user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isLoggedIn": true, "user": user})
}

// Me returns the current user's profile from the database rather than the
// session snapshot, so profile edits show up without re-login.
func (h Handler) Me(c *gin.Context) {
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	current, err := h.userService.FindById(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, current)
}
