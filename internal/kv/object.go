package kv

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

const jsonContentType = "application/json"

// Object stores each key as an object in an S3-compatible bucket.
type Object struct {
	client *minio.Client
	bucket string
}

var _ Store = (*Object)(nil)

func NewObject(client *minio.Client, bucket string) *Object {
	return &Object{client: client, bucket: bucket}
}

// EnsureBucket creates the bucket if it does not exist yet.
func (o *Object) EnsureBucket(ctx context.Context, region string) error {
	exists, err := o.client.BucketExists(ctx, o.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %q: %w", o.bucket, err)
	}
	if exists {
		return nil
	}
	if err := o.client.MakeBucket(ctx, o.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("creating bucket %q: %w", o.bucket, err)
	}
	return nil
}

func (o *Object) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := o.client.GetObject(ctx, o.bucket, key+fileSuffix, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("getting object %q: %w", key, err)
	}
	defer func() { _ = obj.Close() }()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading object %q: %w", key, err)
	}
	return data, nil
}

func (o *Object) Set(ctx context.Context, key string, value []byte) error {
	_, err := o.client.PutObject(ctx, o.bucket, key+fileSuffix, bytes.NewReader(value), int64(len(value)),
		minio.PutObjectOptions{ContentType: jsonContentType})
	if err != nil {
		return fmt.Errorf("putting object %q: %w", key, err)
	}
	return nil
}
