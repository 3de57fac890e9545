package repository

import (
	"gorm.io/gorm"

	"filestorage_backend/internals/constants"
	fileModel "filestorage_backend/internals/features/files/file/model"
	helper "filestorage_backend/internals/helpers"
)

type FileRepository struct {
	DB *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{DB: db}
}

func (r *FileRepository) Create(f *fileModel.FileModel) error {
	return r.DB.Create(f).Error
}

func (r *FileRepository) Save(f *fileModel.FileModel) error {
	return r.DB.Save(f).Error
}

func (r *FileRepository) FindActiveByID(id uint64) (*fileModel.FileModel, error) {
	var f fileModel.FileModel
	err := r.DB.Scopes(helper.Active).First(&f, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FileRepository) FindAllActive() ([]fileModel.FileModel, error) {
	var files []fileModel.FileModel
	err := r.DB.Scopes(helper.Active).Order("id").Find(&files).Error
	return files, err
}

// FindAllActiveByUserID joins through events: the files a given user owns.
// Both tables carry a status column, so the predicate is qualified by hand
// instead of going through the shared scope.
func (r *FileRepository) FindAllActiveByUserID(userID uint64) ([]fileModel.FileModel, error) {
	var files []fileModel.FileModel
	err := r.DB.
		Joins("JOIN events ON events.file_id = files.id AND events.status = ?", constants.StatusActive).
		Where("events.user_id = ?", userID).
		Where("files.status = ?", constants.StatusActive).
		Order("files.id").
		Find(&files).Error
	return files, err
}

// FindActiveIDByFilename resolves a file id from the last path segment of its
// location.
func (r *FileRepository) FindActiveIDByFilename(filename string) (uint64, error) {
	var f fileModel.FileModel
	err := r.DB.Scopes(helper.Active).
		Where("location LIKE ?", "%/"+filename).
		First(&f).Error
	if err != nil {
		return 0, err
	}
	return f.ID, nil
}

func (r *FileRepository) SoftDeleteByID(id uint64) (int64, error) {
	res := r.DB.Model(&fileModel.FileModel{}).
		Scopes(helper.Active).
		Where("id = ?", id).
		Update("status", constants.StatusDeleted)
	return res.RowsAffected, res.Error
}

// SoftDeleteAllByUserID flips every active file linked to userID through an
// active event.
func (r *FileRepository) SoftDeleteAllByUserID(userID uint64) (int64, error) {
	sub := r.DB.Table("events").
		Select("file_id").
		Where("user_id = ? AND status = ?", userID, constants.StatusActive)

	res := r.DB.Model(&fileModel.FileModel{}).
		Scopes(helper.Active).
		Where("id IN (?)", sub).
		Update("status", constants.StatusDeleted)
	return res.RowsAffected, res.Error
}

func (r *FileRepository) SoftDeleteAll() (int64, error) {
	res := r.DB.Model(&fileModel.FileModel{}).
		Scopes(helper.Active).
		Where("1 = 1").
		Update("status", constants.StatusDeleted)
	return res.RowsAffected, res.Error
}
