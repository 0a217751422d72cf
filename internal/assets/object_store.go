package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStoreConfig holds the connection settings for an S3 compatible
// backend.
type ObjectStoreConfig struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// ObjectStore keeps scene assets in a single bucket, one object per
// scene asset.
type ObjectStore struct {
	client *minio.Client
	bucket string
}

// NewObjectStore connects to the backend and ensures the bucket exists.
func NewObjectStore(ctx context.Context, cfg ObjectStoreConfig) (*ObjectStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("assets: connect object store: %w", err)
	}
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("assets: check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("assets: create bucket %s: %w", cfg.Bucket, err)
		}
	}
	return &ObjectStore{client: client, bucket: cfg.Bucket}, nil
}

func (s *ObjectStore) put(ctx context.Context, key, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("assets: put %s: %w", key, err)
	}
	return nil
}

func (s *ObjectStore) get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("assets: get %s: %w", key, err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", key, err)
	}
	return data, nil
}

func (s *ObjectStore) PutAudio(ctx context.Context, jobID string, scene int, data []byte) error {
	return s.put(ctx, audioKey(jobID, scene), "audio/mpeg", data)
}

func (s *ObjectStore) PutImage(ctx context.Context, jobID string, scene int, data []byte) error {
	return s.put(ctx, imageKey(jobID, scene), "image/png", data)
}

func (s *ObjectStore) GetAudio(ctx context.Context, jobID string, scene int) ([]byte, error) {
	return s.get(ctx, audioKey(jobID, scene))
}

func (s *ObjectStore) GetImage(ctx context.Context, jobID string, scene int) ([]byte, error) {
	return s.get(ctx, imageKey(jobID, scene))
}

func (s *ObjectStore) SceneNumbers(ctx context.Context, jobID string) ([]int, []int, error) {
	var audio, images []int
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    jobID + "/",
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, nil, fmt.Errorf("assets: list job %s: %w", jobID, info.Err)
		}
		scene, isAudio, ok := parseSceneKey(path.Base(info.Key))
		if !ok {
			continue
		}
		if isAudio {
			audio = append(audio, scene)
		} else {
			images = append(images, scene)
		}
	}
	return sortScenes(audio), sortScenes(images), nil
}

func (s *ObjectStore) RemoveJob(ctx context.Context, jobID string) error {
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    jobID + "/",
		Recursive: true,
	}) {
		if info.Err != nil {
			return fmt.Errorf("assets: list job %s: %w", jobID, info.Err)
		}
		if err := s.client.RemoveObject(ctx, s.bucket, info.Key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("assets: remove %s: %w", info.Key, err)
		}
	}
	return nil
}
