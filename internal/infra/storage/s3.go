// Package storage uploads user media to S3 compatible object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/delivery-marketplace/internal/config"
)

type putter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Uploader struct {
	client  putter
	bucket  string
	baseURL string
}

func NewS3Uploader(cfg *config.Config) *S3Uploader {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Uploader{
		client:  s3.New(opts),
		bucket:  cfg.S3Bucket,
		baseURL: publicBaseURL(cfg),
	}
}

func publicBaseURL(cfg *config.Config) string {
	switch {
	case cfg.S3PublicBaseURL != "":
		return strings.TrimRight(cfg.S3PublicBaseURL, "/")
	case cfg.S3Endpoint != "":
		return strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}
}

// Put stores body under key and returns its public URL.
func (u *S3Uploader) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return u.baseURL + "/" + key, nil
}

// ProfileImageKey is the object key of a new profile picture of userID.
func ProfileImageKey(userID uint) string {
	return fmt.Sprintf("profiles/%d/%s.webp", userID, uuid.NewString())
}

// ProfileImages transcodes and uploads profile pictures.
type ProfileImages struct {
	uploader *S3Uploader
}

func NewProfileImages(uploader *S3Uploader) *ProfileImages {
	return &ProfileImages{uploader: uploader}
}

func (p *ProfileImages) SaveProfileImage(ctx context.Context, userID uint, r io.Reader) (string, error) {
	body, err := ToWebP(r)
	if err != nil {
		return "", err
	}
	return p.uploader.Put(ctx, ProfileImageKey(userID), "image/webp", body)
}
