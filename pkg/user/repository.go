package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/daygrid/scheduler/internal/errdef"
	"github.com/daygrid/scheduler/pkg/model"

	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) create(ctx context.Context, u *model.User) error {
	err := r.db.WithContext(ctx).Create(&u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("username %q is already taken", u.Username)
	}

	return err
}

func (r repository) findByUsername(ctx context.Context, username string) (*model.User, error) {
	var u *model.User
	err := r.db.
		WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find user with username %q", username)
	}
	return u, err
}

func (r repository) findById(ctx context.Context, id uint) (*model.User, error) {
	var u *model.User
	err := r.db.
		WithContext(ctx).
		First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find user with id %d", id)
	}
	return u, err
}

func (r repository) findOrCreate(ctx context.Context, user *model.User) (*model.User, error) {
	var u *model.User
	err := r.db.
		WithContext(ctx).
		Where(model.User{Username: user.Username}).
		Attrs(model.User{
			Password: user.Password,
			Name:     user.Name,
			JoinDate: user.JoinDate,
			IsAdmin:  user.IsAdmin,
		}).
		FirstOrCreate(&u).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find or create user %q: %v", user.Username, err)
	}
	return u, nil
}
