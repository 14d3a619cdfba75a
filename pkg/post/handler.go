package post

import (
	"context"
	"net/http"
	"time"

	"github.com/daygrid/scheduler/internal/errdef"
	"github.com/daygrid/scheduler/internal/handler"
	"github.com/daygrid/scheduler/pkg/model"

	"github.com/gin-gonic/gin"
)

func NewHandler(postService postService) Handler {
	return Handler{
		postService: postService,
	}
}

type Handler struct {
	postService postService
}

type postService interface {
	Create(ctx context.Context, user *model.User, category model.Category, post *model.Post) (*Post, error)
	FindById(ctx context.Context, category model.Category, id uint) (*Post, error)
	List(ctx context.Context, category model.Category) ([]Post, error)
	Update(ctx context.Context, user *model.User, category model.Category, id uint, title, content string) (*Post, error)
	Delete(ctx context.Context, user *model.User, category model.Category, id uint) error
}

type CreateRequest struct {
	Type    string `json:"type" binding:"required"`
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required,max=10000"`
}

type UpdateRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required,max=10000"`
}

type Response struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func newResponse(post *Post) Response {
	return Response{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		Author:     post.Author,
		AuthorName: post.AuthorName,
		CreatedAt:  post.CreatedAt,
	}
}

// Create stores a new post on the board named in the body.
func (h Handler) Create(c *gin.Context) {
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request CreateRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	category, err := model.ParsePostCategory(request.Type)
	if err != nil {
		_ = c.Error(errdef.NewBadRequest("%v", err))
		return
	}

	post, err := h.postService.Create(c.Request.Context(), user, category, &model.Post{
		Title:   request.Title,
		Content: request.Content,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "postId": post.ID, "type": category})
}

// List returns the latest posts of the board selected by ?type=.
func (h Handler) List(c *gin.Context) {
	category, ok := boardQuery(c)
	if !ok {
		return
	}

	posts, err := h.postService.List(c.Request.Context(), category)
	if err != nil {
		_ = c.Error(err)
		return
	}

	responses := make([]Response, len(posts))
	for i := range posts {
		responses[i] = newResponse(&posts[i])
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "posts": responses})
}

func (h Handler) FindById(c *gin.Context) {
	category, ok := boardQuery(c)
	if !ok {
		return
	}

	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.FindById(c.Request.Context(), category, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "post": newResponse(post)})
}

func (h Handler) Update(c *gin.Context) {
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	category, ok := boardQuery(c)
	if !ok {
		return
	}

	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request UpdateRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	post, err := h.postService.Update(c.Request.Context(), user, category, id, request.Title, request.Content)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "post": newResponse(post)})
}

func (h Handler) Delete(c *gin.Context) {
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	category, ok := boardQuery(c)
	if !ok {
		return
	}

	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), user, category, id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func boardQuery(c *gin.Context) (model.Category, bool) {
	category, err := model.ParsePostCategory(c.Query("type"))
	if err != nil {
		_ = c.Error(errdef.NewBadRequest("%v", err))
		return "", false
	}
	return category, true
}
