package event

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/daygrid/scheduler/internal/errdef"
	"github.com/daygrid/scheduler/internal/handler"
	"github.com/daygrid/scheduler/pkg/calendar"
	"github.com/daygrid/scheduler/pkg/model"

	"github.com/gin-gonic/gin"
)

func NewHandler(eventService eventService) Handler {
	return Handler{
		eventService: eventService,
	}
}

type Handler struct {
	eventService eventService
}

type eventService interface {
	Create(ctx context.Context, user *model.User, event *model.Event) error
	FindById(ctx context.Context, user *model.User, id uint) (*model.Event, error)
	FindByMonth(ctx context.Context, user *model.User, year, month int) ([]model.Event, error)
	FindByDate(ctx context.Context, user *model.User, date string) ([]model.Event, error)
	Update(ctx context.Context, user *model.User, id uint, update *model.Event) (*model.Event, error)
	Delete(ctx context.Context, user *model.User, id uint) error
	Calendar(ctx context.Context, user *model.User, year, month int, opts calendar.Options) (*calendar.Month, error)
}

type Request struct {
	Date      string `json:"date" binding:"required,calendardate"`
	Time      string `json:"time" binding:"required,clocktime"`
	Title     string `json:"title" binding:"required,max=200"`
	Content   string `json:"content" binding:"max=10000"`
	Important bool   `json:"important"`
	IsPrivate *bool  `json:"is_private"`
}

// isPrivate defaults to true so an event is never shared by accident.
func (r Request) isPrivate() bool {
	if r.IsPrivate == nil {
		return true
	}
	return *r.IsPrivate
}

type Response struct {
	ID        uint   `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Important bool   `json:"important"`
	IsPrivate bool   `json:"is_private"`

	// Author fields are flattened so the frontend can render a byline
	// without a second request.
	Author     string `json:"author"`
	AuthorName string `json:"author_name"`
}

func newResponse(event *model.Event) Response {
	return Response{
		ID:         event.ID,
		Date:       event.Date,
		Time:       event.Time,
		Title:      event.Title,
		Content:    event.Content,
		Important:  event.Important,
		IsPrivate:  event.IsPrivate,
		Author:     event.Author.Username,
		AuthorName: event.Author.Name,
	}
}

// Create stores a new event for the signed-in user.
func (h Handler) Create(c *gin.Context) {
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request Request
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	event := &model.Event{
		Date:      request.Date,
		Time:      request.Time,
		Title:     request.Title,
		Content:   request.Content,
		Important: request.Important,
		IsPrivate: request.isPrivate(),
	}

	if err := h.eventService.Create(c.Request.Context(), user, event); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "eventId": event.ID})
}

// FindById returns a single event. Private events are served to their
// owner only.
func (h Handler) FindById(c *gin.Context) {
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	user, _ := handler.LookupUser(c)

	event, err := h.eventService.FindById(c.Request.Context(), user, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event": newResponse(event)})
}

// List returns the events of a month (?year=&month=) or of a single day
// (?date=YYYY-MM-DD), filtered to what the requester may see.
func (h Handler) List(c *gin.Context) {
	user, _ := handler.LookupUser(c)

	if date := c.Query("date"); date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			_ = c.Error(errdef.NewBadRequest("invalid date %q, expected YYYY-MM-DD", date))
			return
		}

		events, err := h.eventService.FindByDate(c.Request.Context(), user, date)
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "events": newResponses(events)})
		return
	}

	year, month, err := monthQuery(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	events, err := h.eventService.FindByMonth(c.Request.Context(), user, year, month)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "events": newResponses(events)})
}

// Update replaces an event. The owner may update their own events, admins
// may update anything.
func (h Handler) Update(c *gin.Context) {
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request Request
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	update := &model.Event{
		Date:      request.Date,
		Time:      request.Time,
		Title:     request.Title,
		Content:   request.Content,
		Important: request.Important,
		IsPrivate: request.isPrivate(),
	}

	event, err := h.eventService.Update(c.Request.Context(), user, id, update)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event": newResponse(event)})
}

func (h Handler) Delete(c *gin.Context) {
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), user, id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Calendar renders the month grid (?year=&month=&selected=), defaulting to
// the current month.
func (h Handler) Calendar(c *gin.Context) {
	user, _ := handler.LookupUser(c)

	year, month, err := monthQuery(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	opts := calendar.Options{Selected: c.Query("selected")}

	grid, err := h.eventService.Calendar(c.Request.Context(), user, year, month, opts)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, grid)
}

func newResponses(events []model.Event) []Response {
	responses := make([]Response, len(events))
	for i := range events {
		responses[i] = newResponse(&events[i])
	}
	return responses
}

// monthQuery reads ?year= and ?month=, falling back to the current month
// when both are absent.
func monthQuery(c *gin.Context) (int, int, error) {
	yearParam := c.Query("year")
	monthParam := c.Query("month")

	if yearParam == "" && monthParam == "" {
		now := time.Now()
		return now.Year(), int(now.Month()), nil
	}

	year, err := strconv.Atoi(yearParam)
	if err != nil || year < 1 {
		return 0, 0, errdef.NewBadRequest("invalid year %q", yearParam)
	}

	month, err := strconv.Atoi(monthParam)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errdef.NewBadRequest("invalid month %q", monthParam)
	}

	return year, month, nil
}
