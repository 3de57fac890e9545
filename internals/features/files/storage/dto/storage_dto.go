package dto

import "time"

type UploadedFileResponse struct {
	Filename        string    `json:"filename"`
	UploadTimestamp time.Time `json:"upload_timestamp"`
}
