package post

import (
	"context"
	"errors"
	"fmt"

	"github.com/daygrid/scheduler/internal/errdef"
	"github.com/daygrid/scheduler/pkg/model"
	"github.com/daygrid/scheduler/pkg/storage"

	"gorm.io/gorm"
)

// listLimit caps a board listing at the twenty most recent posts.
const listLimit = 20

// Post is a board row joined with its author's display fields.
type Post struct {
	model.Post
	Author     string `gorm:"column:author" json:"author"`
	AuthorName string `gorm:"column:author_name" json:"author_name"`
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db: db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) create(ctx context.Context, category model.Category, post *model.Post) error {
	table, err := tableFor(category)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Table(table).Create(post).Error
}

func (r repository) save(ctx context.Context, category model.Category, post *model.Post) error {
	table, err := tableFor(category)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Table(table).Save(post).Error
}

func (r repository) findById(ctx context.Context, category model.Category, id uint) (*Post, error) {
	table, err := tableFor(category)
	if err != nil {
		return nil, err
	}

	var post Post
	err = r.joined(ctx, table).
		Where("p.id = ?", id).
		Take(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("%s post %d not found", category, id)
	}
	return &post, err
}

// list returns the newest posts of the board, most recent first.
func (r repository) list(ctx context.Context, category model.Category) ([]Post, error) {
	table, err := tableFor(category)
	if err != nil {
		return nil, err
	}

	var posts []Post
	err = r.joined(ctx, table).
		Order("p.created_at DESC").
		Limit(listLimit).
		Find(&posts).Error
	return posts, err
}

func (r repository) delete(ctx context.Context, category model.Category, id uint) error {
	table, err := tableFor(category)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Delete(&model.Post{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s post %d: %v", category, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return errdef.NewNotFound("%s post %d not found", category, id)
	}
	return nil
}

func (r repository) joined(ctx context.Context, table string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table(table+" AS p").
		Select("p.*, u.username AS author, u.name AS author_name").
		Joins("JOIN users u ON u.id = p.author_id")
}

func tableFor(category model.Category) (string, error) {
	table, ok := storage.PostTables[category]
	if !ok {
		return "", errdef.NewBadRequest("unknown board type %q", category)
	}
	return table, nil
}
