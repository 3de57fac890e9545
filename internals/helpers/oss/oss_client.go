package oss

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

/* =======================================================================
   Object storage gateway
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	BucketName string
	Prefix     string // optional, e.g. "user-files"
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	ak := getEnv("OSS_ACCESS_KEY")
	sk := getEnv("OSS_SECRET_KEY")
	sts := getEnv("OSS_SECURITY_TOKEN")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: OSS_ENDPOINT/OSS_ACCESS_KEY/OSS_SECRET_KEY/OSS_BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// ObjectKey builds "<prefix>/<filename>".
func (s *OSSService) ObjectKey(filename string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	if s.Prefix == "" {
		return name
	}
	return s.Prefix + "/" + name
}

func (s *OSSService) UploadFile(ctx context.Context, key string, localPath string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	return s.Bucket.PutObjectFromFile(key, localPath, oss.WithContext(ctx))
}

// DownloadStream returns the object body; callers must Close it.
func (s *OSSService) DownloadStream(ctx context.Context, key string) (io.ReadCloser, error) {
	if key == "" {
		return nil, fmt.Errorf("empty key")
	}
	return s.Bucket.GetObject(key, oss.WithContext(ctx))
}

// IsNotFound reports whether err is the storage-side missing-key error.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if se, ok := err.(oss.ServiceError); ok {
		return se.StatusCode == 404 || se.Code == "NoSuchKey"
	}
	return false
}

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }
