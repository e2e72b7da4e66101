// Package storage holds the object-storage client for product images.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type S3Client struct {
	client *s3.Client
	bucket string
}

func NewS3Client(ctx context.Context) (*S3Client, error) {
	bucket := os.Getenv("AWS_S3_BUCKET_NAME")
	if bucket == "" {
		return nil, fmt.Errorf("AWS_S3_BUCKET_NAME is not set")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(os.Getenv("AWS_S3_REGION")))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Client{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// UploadProductImage stores an image under products/ and returns its public URL.
func (c *S3Client) UploadProductImage(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("products/%s-%s", uuid.NewString(), filename)

	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", c.bucket, key), nil
}

// DeleteProductImage removes the object behind a URL previously returned by
// UploadProductImage. Foreign URLs are ignored.
func (c *S3Client) DeleteProductImage(ctx context.Context, imageURL string) error {
	prefix := fmt.Sprintf("https://%s.s3.amazonaws.com/", c.bucket)
	if !strings.HasPrefix(imageURL, prefix) {
		return nil
	}
	key := strings.TrimPrefix(imageURL, prefix)

	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	return err
}
