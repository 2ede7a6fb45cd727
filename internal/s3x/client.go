// Package s3x builds S3 clients for S3-compatible backends (MinIO-style
// static credentials with an endpoint override).
package s3x

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config is what NewClient needs to reach the storage backend.
type Config struct {
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
}

// NewClient builds an S3 client with static credentials and path-style
// addressing.
func NewClient(ctx context.Context, c Config) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.AccessKey, c.SecretKey, "",
		)))
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(c.BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}
