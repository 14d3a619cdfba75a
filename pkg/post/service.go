package post

import (
	"context"

	"github.com/daygrid/scheduler/pkg/access"
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

// Create stores a new board post. Notices may only be created by admins.
func (s Service) Create(ctx context.Context, user *model.User, category model.Category, post *model.Post) (*Post, error) {
	if err := access.CanCreate(access.ActorFromUser(user), category); err != nil {
		return nil, err
	}

	post.AuthorID = user.ID

	if err := s.repository.create(ctx, category, post); err != nil {
		return nil, err
	}

	return &Post{Post: *post, Author: user.Username, AuthorName: user.Name}, nil
}

// Both boards are public reads, there is no per-post view check.
func (s Service) FindById(ctx context.Context, category model.Category, id uint) (*Post, error) {
	return s.repository.findById(ctx, category, id)
}

func (s Service) List(ctx context.Context, category model.Category) ([]Post, error) {
	return s.repository.list(ctx, category)
}

func (s Service) Update(ctx context.Context, user *model.User, category model.Category, id uint, title, content string) (*Post, error) {
	post, err := s.repository.findById(ctx, category, id)
	if err != nil {
		return nil, err
	}

	err = access.CanMutate(access.ActorFromUser(user), access.Resource{
		AuthorID: post.AuthorID,
		Category: category,
	})
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content

	if err := s.repository.save(ctx, category, &post.Post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s Service) Delete(ctx context.Context, user *model.User, category model.Category, id uint) error {
	post, err := s.repository.findById(ctx, category, id)
	if err != nil {
		return err
	}

	err = access.CanMutate(access.ActorFromUser(user), access.Resource{
		AuthorID: post.AuthorID,
		Category: category,
	})
	if err != nil {
		return err
	}

	return s.repository.delete(ctx, category, id)
}
