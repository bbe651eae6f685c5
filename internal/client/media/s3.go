package media

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// S3Options configure an S3Resolver. Empty credentials fall back to the
// default AWS credential chain.
type S3Options struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	Prefix       string
	Expiry       time.Duration
}

// S3Resolver issues presigned GET URLs for profile images kept in an S3 (or
// MinIO) bucket under Prefix.
type S3Resolver struct {
	opts    S3Options
	presign *s3.PresignClient
}

// NewS3Resolver builds the presign client once.
func NewS3Resolver(ctx context.Context, opts S3Options) (*S3Resolver, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	if opts.Expiry <= 0 {
		opts.Expiry = 15 * time.Minute
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	c := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Resolver{opts: opts, presign: newS3PresignClient(c)}, nil
}

// Key maps a reference to its object key: the base name under Prefix.
func (r *S3Resolver) Key(ref string) string {
	name := path.Base(ref)
	if r.opts.Prefix == "" {
		return name
	}
	return strings.TrimSuffix(r.opts.Prefix, "/") + "/" + name
}

func (r *S3Resolver) URL(ctx context.Context, ref string) (string, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "data:") {
		return ref, nil
	}

	req, err := presignGetObject(r.presign, ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.opts.Bucket),
		Key:    aws.String(r.Key(ref)),
	}, s3.WithPresignExpires(r.opts.Expiry))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", ref, err)
	}
	return req.URL, nil
}
