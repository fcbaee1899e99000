package s3

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

type MediaStorage struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

type Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

func ConfigFromEnv() Config {
	return Config{
		Region:          os.Getenv("S3_REGION"),
		Bucket:          os.Getenv("S3_BUCKET"),
		AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		Endpoint:        os.Getenv("S3_ENDPOINT"),
	}
}

func NewMediaStorage(cfg Config) (*MediaStorage, error) {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     cfg.AccessKeyID,
					SecretAccessKey: cfg.SecretAccessKey,
				}, nil
			},
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Path-style addressing for compatibility with S3-compatible services.
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
		o.Region = cfg.Region
	})

	return &MediaStorage{
		client:   client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
	}, nil
}

// Upload puts the file at localPath into the bucket under keyPrefix and
// returns the public URL of the original. Decodable images additionally get
// a 300x300 thumbnail variant stored under keyPrefix/thumbnails; a thumbnail
// failure does not fail the upload.
func (m *MediaStorage) Upload(ctx context.Context, localPath, keyPrefix string) (string, error) {
	fileBytes, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(localPath))
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	fileName := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	originalKey := fmt.Sprintf("%s/%s", keyPrefix, fileName)
	thumbKey := fmt.Sprintf("%s/thumbnails/%s", keyPrefix, fileName)

	if thumbBytes, err := createThumbnail(fileBytes); err == nil {
		// The original remains usable without its thumbnail variant.
		_, _ = m.uploadBytes(ctx, thumbBytes, thumbKey, "image/jpeg")
	}

	url, err := m.uploadBytes(ctx, fileBytes, originalKey, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload original: %w", err)
	}
	return url, nil
}

func createThumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Thumbnail(img, 300, 300, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

func (m *MediaStorage) uploadBytes(ctx context.Context, data []byte, key, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", m.endpoint, m.bucket, key), nil
}

// Delete removes an object by the public URL Upload returned, along with its
// thumbnail variant. A URL that does not point into this bucket is rejected.
func (m *MediaStorage) Delete(ctx context.Context, fileURL string) error {
	prefix := fmt.Sprintf("%s/%s/", m.endpoint, m.bucket)
	key := strings.TrimPrefix(fileURL, prefix)
	if key == fileURL || key == "" {
		return fmt.Errorf("unrecognized file URL: %s", fileURL)
	}

	if dir, name := path.Split(key); name != "" {
		// The original stays deletable even if the thumbnail never existed.
		_ = m.deleteKey(ctx, dir+"thumbnails/"+name)
	}
	return m.deleteKey(ctx, key)
}

func (m *MediaStorage) deleteKey(ctx context.Context, key string) error {
	_, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}
