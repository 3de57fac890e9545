package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"filestorage_backend/internals/constants"
	eventDTO "filestorage_backend/internals/features/files/event/dto"
	eventModel "filestorage_backend/internals/features/files/event/model"
	fileModel "filestorage_backend/internals/features/files/file/model"
	"filestorage_backend/internals/policy"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&fileModel.FileModel{}, &eventModel.EventModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedFileWithEvent(t *testing.T, db *gorm.DB, userID uint64, location string) (*fileModel.FileModel, *eventModel.EventModel) {
	t.Helper()
	f := &fileModel.FileModel{Location: location, Status: constants.StatusActive}
	if err := db.Create(f).Error; err != nil {
		t.Fatalf("seed file: %v", err)
	}
	e := &eventModel.EventModel{UserID: userID, FileID: f.ID, Status: constants.StatusActive}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return f, e
}

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *fiber.Error, got %T (%v)", err, err)
	}
	return fe.Code
}

func TestGetByIDAndCaller_ForbiddenBeforeNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	_, e := seedFileWithEvent(t, db, 7, "https://bucket.s3.amazonaws.com/a.txt")

	// foreign USER caller gets 403, never 404
	_, err := svc.GetByIDAndCaller(e.ID, policy.Caller{UserID: 8, Role: constants.RoleUser})
	if fiberStatus(t, err) != fiber.StatusForbidden {
		t.Errorf("expected 403 for foreign event, got %v", err)
	}

	// a USER caller probing a nonexistent id also fails closed with 403
	_, err = svc.GetByIDAndCaller(9999, policy.Caller{UserID: 8, Role: constants.RoleUser})
	if fiberStatus(t, err) != fiber.StatusForbidden {
		t.Errorf("expected 403 for nonexistent id as USER, got %v", err)
	}

	// admin reading a nonexistent id gets 404
	_, err = svc.GetByIDAndCaller(9999, policy.Caller{UserID: 1, Role: constants.RoleAdmin})
	if fiberStatus(t, err) != fiber.StatusNotFound {
		t.Errorf("expected 404 for nonexistent id as ADMIN, got %v", err)
	}

	// owner reads fine, with the file embedded
	d, err := svc.GetByIDAndCaller(e.ID, policy.Caller{UserID: 7, Role: constants.RoleUser})
	if err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if d.File.Location != "https://bucket.s3.amazonaws.com/a.txt" {
		t.Errorf("embedded file location = %q", d.File.Location)
	}
}

func TestGetAllForCaller_UserScopedListing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	seedFileWithEvent(t, db, 7, "https://bucket.s3.amazonaws.com/a.txt")
	seedFileWithEvent(t, db, 8, "https://bucket.s3.amazonaws.com/b.txt")

	all, err := svc.GetAllForCaller(policy.Caller{UserID: 1, Role: constants.RoleAdmin})
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin sees %d events, want 2", len(all))
	}

	mine, err := svc.GetAllForCaller(policy.Caller{UserID: 7, Role: constants.RoleUser})
	if err != nil {
		t.Fatalf("user list: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != 7 {
		t.Errorf("user listing not scoped to own id: %+v", mine)
	}
}

func TestExistsByFilenameAndUserID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	seedFileWithEvent(t, db, 7, "https://bucket.s3.amazonaws.com/a.txt")

	ok, err := svc.ExistsByFilenameAndUserID("a.txt", 7)
	if err != nil || !ok {
		t.Errorf("expected link for owner, got ok=%v err=%v", ok, err)
	}

	ok, err = svc.ExistsByFilenameAndUserID("a.txt", 8)
	if err != nil || ok {
		t.Errorf("expected no link for other user, got ok=%v err=%v", ok, err)
	}

	ok, err = svc.ExistsByFilenameAndUserID("missing.txt", 7)
	if err != nil || ok {
		t.Errorf("expected no link for unknown filename, got ok=%v err=%v", ok, err)
	}
}

func TestUpdateMutatesLinkageOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	f, e := seedFileWithEvent(t, db, 7, "https://bucket.s3.amazonaws.com/a.txt")

	d, err := svc.Update(e.ID, &eventDTO.EventUpdateRequest{UserID: 9, FileID: f.ID})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if d.UserID != 9 || d.FileID != f.ID {
		t.Errorf("updated linkage = %+v", d)
	}

	_, err = svc.Update(9999, &eventDTO.EventUpdateRequest{UserID: 1, FileID: 1})
	if fiberStatus(t, err) != fiber.StatusNotFound {
		t.Errorf("expected 404 for missing event, got %v", err)
	}
}

func TestDeleteAllByUserIDCountsTransitions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	seedFileWithEvent(t, db, 7, "https://bucket.s3.amazonaws.com/a.txt")
	seedFileWithEvent(t, db, 7, "https://bucket.s3.amazonaws.com/b.txt")
	seedFileWithEvent(t, db, 8, "https://bucket.s3.amazonaws.com/c.txt")

	count, err := svc.DeleteAllByUserID(7)
	if err != nil {
		t.Fatalf("delete by user: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	left, err := svc.GetAllForCaller(policy.Caller{UserID: 1, Role: constants.RoleAdmin})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(left) != 1 || left[0].UserID != 8 {
		t.Errorf("unexpected remaining events: %+v", left)
	}

	count, err = svc.DeleteAll()
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if count != 1 {
		t.Errorf("delete-all count = %d, want 1", count)
	}
}
