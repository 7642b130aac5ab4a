package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config addresses an S3-compatible store such as MinIO.
type S3Config struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3Client = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type S3Exporter struct {
	cfg S3Config
}

func NewS3Exporter(cfg S3Config) *S3Exporter {
	return &S3Exporter{cfg: cfg}
}

func (e *S3Exporter) client(ctx context.Context) (objectPutter, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(e.cfg.Region)}
	if e.cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(e.cfg.AccessKey, e.cfg.SecretKey, ""),
		))
	}
	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return newS3Client(awsCfg, func(o *s3.Options) {
		if e.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(e.cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (e *S3Exporter) Export(ctx context.Context, s Snapshot) (string, error) {
	data, err := s.encode()
	if err != nil {
		return "", err
	}
	c, err := e.client(ctx)
	if err != nil {
		return "", err
	}
	key := s.Name()
	_, err = c.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("put snapshot: %w", err)
	}
	return "s3://" + e.cfg.Bucket + "/" + key, nil
}
