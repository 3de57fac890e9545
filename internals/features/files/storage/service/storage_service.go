package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"filestorage_backend/internals/configs"
	eventModel "filestorage_backend/internals/features/files/event/model"
	eventRepo "filestorage_backend/internals/features/files/event/repository"
	eventService "filestorage_backend/internals/features/files/event/service"
	fileModel "filestorage_backend/internals/features/files/file/model"
	fileRepo "filestorage_backend/internals/features/files/file/repository"
	storageDTO "filestorage_backend/internals/features/files/storage/dto"
	osshelper "filestorage_backend/internals/helpers/oss"
	"filestorage_backend/internals/policy"
)

// ObjectStorage is the gateway surface the pipeline needs; the OSS client
// satisfies it, tests use an in-memory fake.
type ObjectStorage interface {
	ObjectKey(filename string) string
	UploadFile(ctx context.Context, key, localPath string) error
	DownloadStream(ctx context.Context, key string) (io.ReadCloser, error)
}

type StorageService struct {
	Files   *fileRepo.FileRepository
	Events  *eventRepo.EventRepository
	EventSv *eventService.EventService
	Storage ObjectStorage
}

func NewStorageService(db *gorm.DB, storage ObjectStorage) *StorageService {
	return &StorageService{
		Files:   fileRepo.NewFileRepository(db),
		Events:  eventRepo.NewEventRepository(db),
		EventSv: eventService.NewEventService(db),
		Storage: storage,
	}
}

// Upload runs the pipeline: File row, Event row, then the object-storage put.
// The database writes and the storage write are not tied by a transaction; a
// failure after the rows are written leaves them pointing at an object that
// was never stored (accepted, see DESIGN.md).
func (s *StorageService) Upload(ctx context.Context, r io.Reader, filename string, callerUserID uint64) (*storageDTO.UploadedFileResponse, error) {
	filename = filepath.Base(filename)
	if filename == "" || filename == "." || filename == "/" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid filename")
	}

	location := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", configs.S3BucketName, filename)

	f := &fileModel.FileModel{Location: location}
	if err := s.Files.Create(f); err != nil {
		log.Printf("[ERROR] upload %q: create file row: %v", filename, err)
		return nil, err
	}

	e := &eventModel.EventModel{UserID: callerUserID, FileID: f.ID}
	if err := s.Events.Create(e); err != nil {
		log.Printf("[ERROR] upload %q: create event row: %v", filename, err)
		return nil, err
	}

	tempFile, err := s.spoolToTemp(r, filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(tempFile); err != nil {
			log.Printf("[WARN] remove temp file %s: %v", tempFile, err)
		}
	}()

	key := s.Storage.ObjectKey(filename)
	if err := s.Storage.UploadFile(ctx, key, tempFile); err != nil {
		log.Printf("[ERROR] upload %q to storage (user %d): %v", filename, callerUserID, err)
		return nil, err
	}

	log.Printf("[INFO] file %q uploaded for user %d", filename, callerUserID)
	return &storageDTO.UploadedFileResponse{
		Filename:        filename,
		UploadTimestamp: time.Now().UTC(),
	}, nil
}

// spoolToTemp stages the request body on disk so the storage client can
// stream a seekable file.
func (s *StorageService) spoolToTemp(r io.Reader, filename string) (string, error) {
	dir := configs.UploadTempDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create temp directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, uuid.NewString()+"-"+filename)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	return path, nil
}

// Download fails closed for USER callers without an active event linking them
// to the filename; admins and moderators bypass the link check. A missing
// storage object is NotFound for every role.
func (s *StorageService) Download(ctx context.Context, filename string, caller policy.Caller) (io.ReadCloser, error) {
	filename = filepath.Base(filename)

	if !caller.IsAdminOrModerator() {
		linked, err := s.EventSv.ExistsByFilenameAndUserID(filename, caller.UserID)
		if err != nil {
			return nil, err
		}
		if !linked {
			return nil, fiber.NewError(fiber.StatusForbidden, "Access denied")
		}
	}

	rc, err := s.Storage.DownloadStream(ctx, s.Storage.ObjectKey(filename))
	if err != nil {
		if osshelper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "File not found in storage")
		}
		log.Printf("[ERROR] download %q: %v", filename, err)
		return nil, err
	}
	return rc, nil
}
