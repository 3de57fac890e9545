package repository

import (
	"gorm.io/gorm"

	"filestorage_backend/internals/constants"
	eventModel "filestorage_backend/internals/features/files/event/model"
	helper "filestorage_backend/internals/helpers"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(e *eventModel.EventModel) error {
	return r.DB.Create(e).Error
}

func (r *EventRepository) Save(e *eventModel.EventModel) error {
	return r.DB.Save(e).Error
}

func (r *EventRepository) FindActiveByID(id uint64) (*eventModel.EventModel, error) {
	var e eventModel.EventModel
	err := r.DB.Scopes(helper.Active).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) FindAllActive() ([]eventModel.EventModel, error) {
	var events []eventModel.EventModel
	err := r.DB.Scopes(helper.Active).Order("id").Find(&events).Error
	return events, err
}

func (r *EventRepository) FindAllActiveByUserID(userID uint64) ([]eventModel.EventModel, error) {
	var events []eventModel.EventModel
	err := r.DB.Scopes(helper.Active).
		Where("user_id = ?", userID).
		Order("id").
		Find(&events).Error
	return events, err
}

func (r *EventRepository) ExistsActiveByIDAndUserID(id, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&eventModel.EventModel{}).
		Scopes(helper.Active).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *EventRepository) ExistsActiveByFileIDAndUserID(fileID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&eventModel.EventModel{}).
		Scopes(helper.Active).
		Where("file_id = ? AND user_id = ?", fileID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *EventRepository) SoftDeleteByID(id uint64) (int64, error) {
	res := r.DB.Model(&eventModel.EventModel{}).
		Scopes(helper.Active).
		Where("id = ?", id).
		Update("status", constants.StatusDeleted)
	return res.RowsAffected, res.Error
}

func (r *EventRepository) SoftDeleteAllByUserID(userID uint64) (int64, error) {
	res := r.DB.Model(&eventModel.EventModel{}).
		Scopes(helper.Active).
		Where("user_id = ?", userID).
		Update("status", constants.StatusDeleted)
	return res.RowsAffected, res.Error
}

func (r *EventRepository) SoftDeleteAll() (int64, error) {
	res := r.DB.Model(&eventModel.EventModel{}).
		Scopes(helper.Active).
		Where("1 = 1").
		Update("status", constants.StatusDeleted)
	return res.RowsAffected, res.Error
}
