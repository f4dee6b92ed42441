package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/Hernadil/tracker/internal/config"
	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// FootageStore keeps raw footage files in a MinIO bucket, keyed by project
// so a project's objects can be removed with one prefix scan.
type FootageStore struct {
	client *minioSDK.Client
	bucket string
}

func NewFootageStore() (*FootageStore, error) {
	client, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		log.Printf("[storage] bucket created: %s", config.MinioBucket)
	}

	return &FootageStore{client: client, bucket: config.MinioBucket}, nil
}

// footageKey builds a unique object name; the uuid keeps repeated uploads of
// the same filename from clobbering each other.
func footageKey(projectID, titleID uint, filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	return fmt.Sprintf("projects/%d/titles/%d/%s-%s", projectID, titleID, uuid.NewString(), base)
}

// UploadFootage stores one raw file and returns the generated object key.
func (s *FootageStore) UploadFootage(ctx context.Context, projectID, titleID uint, filename, contentType string, r io.Reader, size int64) (string, error) {
	key := footageKey(projectID, titleID, filename)
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload footage: %w", err)
	}
	return key, nil
}

// DownloadFootage streams a stored object. The caller closes the reader.
func (s *FootageStore) DownloadFootage(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("download footage: %w", err)
	}
	return obj, nil
}

// RemoveProjectFootage deletes every object under the project's prefix.
func (s *FootageStore) RemoveProjectFootage(projectID uint) error {
	ctx := context.Background()
	prefix := fmt.Sprintf("projects/%d/", projectID)
	for obj := range s.client.ListObjects(ctx, s.bucket, minioSDK.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return obj.Err
		}
		if err := s.client.RemoveObject(ctx, s.bucket, obj.Key, minioSDK.RemoveObjectOptions{}); err != nil {
			return err
		}
	}
	return nil
}
