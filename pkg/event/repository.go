package event

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
	return &repository{db: db}
}

type repository struct {
	db *gorm.DB
}

// Author is omitted on writes so storing an event never touches the users
// table, the association is read only.
func (r repository) create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Omit("Author").Create(event).Error
}

func (r repository) save(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Omit("Author").Save(event).Error
}

func (r repository) findById(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("event %d not found", id)
	}
	return &event, err
}

// findByDateRange returns the events with from <= date < to that are public
// or owned by viewerID. Dates compare correctly as strings since they are
// stored zero padded.
func (r repository) findByDateRange(ctx context.Context, from, to string, viewerID uint) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("date >= ? AND date < ?", from, to).
		Where("is_private = ? OR author_id = ?", false, viewerID).
		Order("date, time").
		Find(&events).Error
	return events, err
}

func (r repository) findByDate(ctx context.Context, date string, viewerID uint) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("date = ?", date).
		Where("is_private = ? OR author_id = ?", false, viewerID).
		Order("time").
		Find(&events).Error
	return events, err
}

func (r repository) delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Event{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete event %d: %v", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return errdef.NewNotFound("event %d not found", id)
	}
	return nil
}
