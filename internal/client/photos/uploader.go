// Package photos uploads profile pictures to S3-compatible object storage
// and returns the public URL stored in the user's "foto" field.
package photos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/blogpessoal/internal/filex"
	"github.com/google/uuid"
)

// ErrNotConfigured is returned by Upload when no bucket was configured.
var ErrNotConfigured = errors.New("photo storage is not configured")

// maxPhotoSize bounds the files accepted for upload.
const maxPhotoSize = 5 << 20

// Config describes the bucket. PublicURL is the prefix under which uploaded
// objects are reachable; when empty, BaseEndpoint/Bucket is used.
type Config struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	PublicURL    string
}

func (c Config) Enabled() bool {
	return c.Bucket != "" && c.BaseEndpoint != ""
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// seams for tests
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig
	newS3Client          = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}
	newKey = func(ext string) string { return "photos/" + uuid.NewString() + ext }
)

type Uploader struct {
	cfg    Config
	client objectPutter
}

// NewUploader returns an uploader for cfg. A disabled config yields an
// uploader whose Upload always fails with ErrNotConfigured.
func NewUploader(ctx context.Context, cfg Config) (*Uploader, error) {
	u := &Uploader{cfg: cfg}
	if !cfg.Enabled() {
		return u, nil
	}

	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load s3 config: %w", err)
	}

	u.client = newS3Client(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		o.UsePathStyle = true
	})
	return u, nil
}

func (u *Uploader) Enabled() bool {
	return u != nil && u.client != nil
}

// Upload stores the file at path under a fresh key and returns its URL.
func (u *Uploader) Upload(ctx context.Context, path string) (string, error) {
	if !u.Enabled() {
		return "", ErrNotConfigured
	}

	data, contentType, err := filex.ReadWithContentType(path)
	if err != nil {
		return "", err
	}
	if len(data) > maxPhotoSize {
		return "", fmt.Errorf("photo %s is larger than %d bytes", path, maxPhotoSize)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("photo %s is not an image (%s)", path, contentType)
	}

	key := newKey(strings.ToLower(filepath.Ext(path)))
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	return u.objectURL(key), nil
}

func (u *Uploader) objectURL(key string) string {
	base := u.cfg.PublicURL
	if base == "" {
		base = strings.TrimRight(u.cfg.BaseEndpoint, "/") + "/" + u.cfg.Bucket
	}
	return strings.TrimRight(base, "/") + "/" + key
}
