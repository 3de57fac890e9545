package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"filestorage_backend/internals/constants"
	eventModel "filestorage_backend/internals/features/files/event/model"
	fileModel "filestorage_backend/internals/features/files/file/model"
	userDTO "filestorage_backend/internals/features/users/user/dto"
	userModel "filestorage_backend/internals/features/users/user/model"
	"filestorage_backend/internals/policy"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&userModel.UserModel{}, &fileModel.FileModel{}, &eventModel.EventModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *fiber.Error, got %T (%v)", err, err)
	}
	return fe.Code
}

func TestRegisterAssignsUserRoleAndEnabled(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	u, err := svc.Register(&userDTO.RegisterRequest{
		Username: "alice",
		Password: "s3cretpass",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Role != constants.RoleUser {
		t.Errorf("role = %q, want USER", u.Role)
	}
	if !u.Enabled {
		t.Error("expected enabled=true")
	}
	if u.Status != constants.StatusActive {
		t.Errorf("status = %q, want ACTIVE", u.Status)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cretpass")); err != nil {
		t.Error("stored password is not the bcrypt hash of the input")
	}
	if u.CreatedAt.IsZero() {
		t.Error("expected created_at to be stamped")
	}
}

func TestGetByIDAndCaller_Visibility(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	owner, _ := svc.Register(&userDTO.RegisterRequest{Username: "owner", Password: "password1"})
	other, _ := svc.Register(&userDTO.RegisterRequest{Username: "other", Password: "password1"})

	// USER reads their own row
	if _, err := svc.GetByIDAndCaller(owner.ID, policy.Caller{UserID: owner.ID, Role: constants.RoleUser}); err != nil {
		t.Fatalf("self read: %v", err)
	}

	// USER denied for another user's row
	_, err := svc.GetByIDAndCaller(owner.ID, policy.Caller{UserID: other.ID, Role: constants.RoleUser})
	if fiberStatus(t, err) != fiber.StatusForbidden {
		t.Errorf("expected 403 for foreign read, got %v", err)
	}

	// moderator reads anything
	if _, err := svc.GetByIDAndCaller(owner.ID, policy.Caller{UserID: 999, Role: constants.RoleModerator}); err != nil {
		t.Fatalf("moderator read: %v", err)
	}

	// missing row is 404 for an admin
	_, err = svc.GetByIDAndCaller(12345, policy.Caller{UserID: 1, Role: constants.RoleAdmin})
	if fiberStatus(t, err) != fiber.StatusNotFound {
		t.Errorf("expected 404 for missing row, got %v", err)
	}
}

func TestGetByIDAndCaller_OrphanedEventGetsEmptyFile(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	u, _ := svc.Register(&userDTO.RegisterRequest{Username: "alice", Password: "password1"})
	// event pointing at a file id that does not exist
	if err := db.Create(&eventModel.EventModel{UserID: u.ID, FileID: 777, Status: constants.StatusActive}).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}

	d, err := svc.GetByIDAndCaller(u.ID, policy.Caller{UserID: u.ID, Role: constants.RoleUser})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(d.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(d.Events))
	}
	if d.Events[0].File.ID != 0 || d.Events[0].File.Location != "" {
		t.Errorf("expected empty file fallback, got %+v", d.Events[0].File)
	}
}

func TestUpdateByID_UsernameTaken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	a, _ := svc.Register(&userDTO.RegisterRequest{Username: "alice", Password: "password1"})
	b, _ := svc.Register(&userDTO.RegisterRequest{Username: "bob", Password: "password1"})

	_, err := svc.UpdateByID(b.ID, &userDTO.UserUpdateRequest{Username: "alice"})
	if fiberStatus(t, err) != fiber.StatusBadRequest {
		t.Errorf("expected 400 for taken username, got %v", err)
	}

	// a soft-deleted user no longer blocks the username
	if err := svc.DeleteByID(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.UpdateByID(b.ID, &userDTO.UserUpdateRequest{Username: "alice"}); err != nil {
		t.Fatalf("expected update to pass once the holder is deleted: %v", err)
	}
}

func TestUpdateByID_EmptyPasswordKeepsHash(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	u, _ := svc.Register(&userDTO.RegisterRequest{Username: "alice", Password: "password1"})
	oldHash := u.Password

	if _, err := svc.UpdateByID(u.ID, &userDTO.UserUpdateRequest{Username: "alice", FirstName: "Alice"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := svc.GetByID(u.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Password != oldHash {
		t.Error("expected password hash to be unchanged for empty password")
	}
	if got.FirstName != "Alice" {
		t.Errorf("first name = %q, want Alice", got.FirstName)
	}

	if _, err := svc.UpdateByID(u.ID, &userDTO.UserUpdateRequest{Username: "alice", Password: "newpassword"}); err != nil {
		t.Fatalf("update with password: %v", err)
	}
	got, _ = svc.GetByID(u.ID)
	if got.Password == oldHash {
		t.Error("expected password hash to change for non-empty password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("newpassword")); err != nil {
		t.Error("new hash does not match new password")
	}
}

func TestUpdateByID_MissingRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.UpdateByID(42, &userDTO.UserUpdateRequest{Username: "ghost"})
	if fiberStatus(t, err) != fiber.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestSoftDeleteExcludesFromActiveReads(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	u, _ := svc.Register(&userDTO.RegisterRequest{Username: "alice", Password: "password1"})
	if err := svc.DeleteByID(u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err := svc.GetByID(u.ID)
	if fiberStatus(t, err) != fiber.StatusNotFound {
		t.Errorf("expected 404 after soft delete, got %v", err)
	}

	// the row is retained
	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("id = ?", u.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected retained row, count = %d", count)
	}

	// deleting again is 404
	err = svc.DeleteByID(u.ID)
	if fiberStatus(t, err) != fiber.StatusNotFound {
		t.Errorf("expected 404 for double delete, got %v", err)
	}
}

func TestDeleteAllReturnsCount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	a, _ := svc.Register(&userDTO.RegisterRequest{Username: "alice", Password: "password1"})
	b, _ := svc.Register(&userDTO.RegisterRequest{Username: "bob", Password: "password1"})

	count, err := svc.DeleteAll()
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	for _, id := range []uint64{a.ID, b.ID} {
		if _, err := svc.GetByID(id); fiberStatus(t, err) != fiber.StatusNotFound {
			t.Errorf("expected 404 for user %d after delete-all", id)
		}
	}

	// nothing left to delete
	count, err = svc.DeleteAll()
	if err != nil {
		t.Fatalf("second delete all: %v", err)
	}
	if count != 0 {
		t.Errorf("second count = %d, want 0", count)
	}
}
