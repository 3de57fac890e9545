package repository

import (
	"gorm.io/gorm"

	"filestorage_backend/internals/constants"
	userModel "filestorage_backend/internals/features/users/user/model"
	helper "filestorage_backend/internals/helpers"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *userModel.UserModel) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) Save(u *userModel.UserModel) error {
	return r.DB.Save(u).Error
}

func (r *UserRepository) FindActiveByID(id uint64) (*userModel.UserModel, error) {
	var u userModel.UserModel
	err := r.DB.Scopes(helper.Active).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindActiveByUsername(username string) (*userModel.UserModel, error) {
	var u userModel.UserModel
	err := r.DB.Scopes(helper.Active).First(&u, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindAllActive() ([]userModel.UserModel, error) {
	var users []userModel.UserModel
	err := r.DB.Scopes(helper.Active).Order("id").Find(&users).Error
	return users, err
}

// ExistsActiveByUsernameAndIDNot backs the username-uniqueness check at
// register and update time (id 0 excludes nothing). The check and the
// following save are not atomic; the race is accepted (see DESIGN.md).
func (r *UserRepository) ExistsActiveByUsernameAndIDNot(username string, id uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&userModel.UserModel{}).
		Scopes(helper.Active).
		Where("username = ? AND id <> ?", username, id).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) SoftDeleteByID(id uint64) (int64, error) {
	res := r.DB.Model(&userModel.UserModel{}).
		Scopes(helper.Active).
		Where("id = ?", id).
		Update("status", constants.StatusDeleted)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) SoftDeleteAll() (int64, error) {
	res := r.DB.Model(&userModel.UserModel{}).
		Scopes(helper.Active).
		Where("1 = 1").
		Update("status", constants.StatusDeleted)
	return res.RowsAffected, res.Error
}
