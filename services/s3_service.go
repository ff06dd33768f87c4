package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Service handles post media and avatar storage
type S3Service struct {
	Client *s3.Client
}

// InitializeS3Client initializes the S3 client
func InitializeS3Client() *s3.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return s3.NewFromConfig(cfg)
}

func bucketName() string {
	return os.Getenv("S3_BUCKET_NAME")
}

// UploadMedia streams an uploaded file to S3 and returns its object key.
// The key is prefixed by media kind so images and videos stay separable.
func (ss *S3Service) UploadMedia(ctx context.Context, fileName, contentType string, body io.Reader) (string, error) {
	prefix := "uploads/"
	if strings.HasPrefix(contentType, "image/") {
		prefix = "uploads/images/"
	} else if strings.HasPrefix(contentType, "video/") {
		prefix = "uploads/videos/"
	}
	key := prefix + time.Now().Format("20060102150405") + "-" + uuid.New().String() + "-" + fileName

	_, err := ss.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucketName()),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload media: %w", err)
	}
	log.Printf("📷 Uploaded media %s", key)
	return key, nil
}

// GenerateUploadURL generates a presigned URL for uploading a file
func (ss *S3Service) GenerateUploadURL(fileName, fileType string) (string, string, error) {
	key := "uploads/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(bucketName()),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigner := s3.NewPresignClient(ss.Client)
	presignedURL, err := presigner.PresignPutObject(context.TODO(), params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", err
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading a file
func (ss *S3Service) GenerateReadURL(key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(bucketName()),
		Key:    aws.String(key),
	}
	presigner := s3.NewPresignClient(ss.Client)
	presignedURL, err := presigner.PresignGetObject(context.TODO(), params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
