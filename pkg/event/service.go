package event

import (
	"context"
	"fmt"

	"github.com/daygrid/scheduler/pkg/access"
	"github.com/daygrid/scheduler/pkg/calendar"
	"github.com/daygrid/scheduler/pkg/model"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(repository *repository) *Service {
	return &Service{
		repository: repository,
	}
}

type Service struct {
	repository *repository
}

func (s Service) Create(ctx context.Context, user *model.User, event *model.Event) error {
	if err := access.CanCreate(access.ActorFromUser(user), model.CategoryEvent); err != nil {
		return err
	}

	event.AuthorID = user.ID
	event.Author = *user

	return s.repository.create(ctx, event)
}

func (s Service) FindById(ctx context.Context, user *model.User, id uint) (*model.Event, error) {
	event, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	err = access.CanView(access.ActorFromUser(user), access.Resource{
		AuthorID: event.AuthorID,
		Private:  event.IsPrivate,
		Category: model.CategoryEvent,
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

// FindByMonth returns the month's events visible to user, ordered by date
// and time. Anonymous requests see public events only.
func (s Service) FindByMonth(ctx context.Context, user *model.User, year, month int) ([]model.Event, error) {
	from := fmt.Sprintf("%04d-%02d-01", year, month)
	nextYear, nextMonth := calendar.Next(year, month)
	to := fmt.Sprintf("%04d-%02d-01", nextYear, nextMonth)

	return s.repository.findByDateRange(ctx, from, to, viewerID(user))
}

func (s Service) FindByDate(ctx context.Context, user *model.User, date string) ([]model.Event, error) {
	return s.repository.findByDate(ctx, date, viewerID(user))
}

func (s Service) Update(ctx context.Context, user *model.User, id uint, update *model.Event) (*model.Event, error) {
	event, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	err = access.CanMutate(access.ActorFromUser(user), access.Resource{
		AuthorID: event.AuthorID,
		Private:  event.IsPrivate,
		Category: model.CategoryEvent,
	})
	if err != nil {
		return nil, err
	}

	event.Date = update.Date
	event.Time = update.Time
	event.Title = update.Title
	event.Content = update.Content
	event.Important = update.Important
	event.IsPrivate = update.IsPrivate

	err = s.repository.save(ctx, event)
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (s Service) Delete(ctx context.Context, user *model.User, id uint) error {
	event, err := s.repository.findById(ctx, id)
	if err != nil {
		return err
	}

	err = access.CanMutate(access.ActorFromUser(user), access.Resource{
		AuthorID: event.AuthorID,
		Private:  event.IsPrivate,
		Category: model.CategoryEvent,
	})
	if err != nil {
		return err
	}

	return s.repository.delete(ctx, id)
}

// Calendar renders the month grid. The query already filters visibility per
// viewer, the grid builder filters again so a stale row can never leak.
func (s Service) Calendar(ctx context.Context, user *model.User, year, month int, opts calendar.Options) (*calendar.Month, error) {
	events, err := s.FindByMonth(ctx, user, year, month)
	if err != nil {
		return nil, err
	}

	return calendar.BuildMonth(year, month, events, access.ActorFromUser(user), opts)
}

func viewerID(user *model.User) uint {
	if user == nil {
		return 0
	}
	return user.ID
}
