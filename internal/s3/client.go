package s3

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// APIVersion is the provider control-plane API version this client speaks.
// The SDK pins it on the wire; the constant records the contract for
// surfaces that report it (version endpoint, logs).
const APIVersion = "2006-03-01"

// Credentials for the storage provider. The zero value selects the SDK's
// default environment-based resolution chain.
type Credentials struct {
	AccessKey string
	SecretKey string
}

// Static reports whether an explicit key pair is present.
func (c Credentials) Static() bool { return c.AccessKey != "" && c.SecretKey != "" }

// Config carries the provider endpoint settings. Immutable once a client is
// built; callers resolve it fully before construction.
type Config struct {
	Endpoint     string // empty uses the provider default (AWS)
	Region       string
	UsePathStyle bool // bucket in the URL path; required by most self-hosted providers
}

// PublicAccessBlock mirrors the provider's four public-access safety
// switches. All false leaves access control to bucket policies/ACLs.
type PublicAccessBlock struct {
	BlockPublicACLs       bool
	IgnorePublicACLs      bool
	BlockPublicPolicy     bool
	RestrictPublicBuckets bool
}

// Ownership selects the bucket's object-ownership rule.
type Ownership string

const (
	OwnershipBucketOwnerPreferred Ownership = "BucketOwnerPreferred"
	OwnershipObjectWriter         Ownership = "ObjectWriter"
	OwnershipBucketOwnerEnforced  Ownership = "BucketOwnerEnforced"
)

// CORSRule is one cross-origin rule applied to a bucket.
type CORSRule struct {
	AllowedMethods []string
	AllowedHeaders []string
	AllowedOrigins []string
	ExposeHeaders  []string
	MaxAgeSeconds  int32
}

// Client wraps the provider's S3-compatible control-plane API.
type Client struct {
	s3     *s3.Client
	region string
}

// normalizeEndpoint ensures the endpoint carries a scheme; the SDK requires
// a full URL for BaseEndpoint. Bare host:port defaults to https.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return ""
	}
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return "https://" + endpoint
}

// New builds a client for the given endpoint settings. With a static key
// pair the client is assembled directly; otherwise credentials come from the
// SDK's default chain (environment, shared config, IMDS). No provider call
// is made here.
func New(cfg Config, creds Credentials) (*Client, error) {
	endpoint := normalizeEndpoint(cfg.Endpoint)

	if creds.Static() {
		opts := s3.Options{
			Region:       cfg.Region,
			UsePathStyle: cfg.UsePathStyle,
			Credentials:  credentials.NewStaticCredentialsProvider(creds.AccessKey, creds.SecretKey, ""),
		}
		if endpoint != "" {
			opts.BaseEndpoint = aws.String(endpoint)
		}
		return &Client{s3: s3.New(opts), region: cfg.Region}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &Client{s3: client, region: cfg.Region}, nil
}

// CreateBucket creates a new bucket. Region placement is forwarded for
// regions that require an explicit location constraint.
func (c *Client) CreateBucket(ctx context.Context, bucket string) error {
	input := &s3.CreateBucketInput{Bucket: aws.String(bucket)}
	if c.region != "" && c.region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(c.region),
		}
	}
	if _, err := c.s3.CreateBucket(ctx, input); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

// DeleteBucket deletes a bucket. The bucket must be empty.
func (c *Client) DeleteBucket(ctx context.Context, bucket string) error {
	_, err := c.s3.DeleteBucket(ctx, &s3.DeleteBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return fmt.Errorf("failed to delete bucket %s: %w", bucket, err)
	}
	return nil
}

// PutPublicAccessBlock replaces the bucket's public-access-block settings.
func (c *Client) PutPublicAccessBlock(ctx context.Context, bucket string, block PublicAccessBlock) error {
	_, err := c.s3.PutPublicAccessBlock(ctx, &s3.PutPublicAccessBlockInput{
		Bucket: aws.String(bucket),
		PublicAccessBlockConfiguration: &types.PublicAccessBlockConfiguration{
			BlockPublicAcls:       aws.Bool(block.BlockPublicACLs),
			IgnorePublicAcls:      aws.Bool(block.IgnorePublicACLs),
			BlockPublicPolicy:     aws.Bool(block.BlockPublicPolicy),
			RestrictPublicBuckets: aws.Bool(block.RestrictPublicBuckets),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to put public access block on bucket %s: %w", bucket, err)
	}
	return nil
}

// PutOwnershipControls sets the bucket's single object-ownership rule.
func (c *Client) PutOwnershipControls(ctx context.Context, bucket string, ownership Ownership) error {
	_, err := c.s3.PutBucketOwnershipControls(ctx, &s3.PutBucketOwnershipControlsInput{
		Bucket: aws.String(bucket),
		OwnershipControls: &types.OwnershipControls{
			Rules: []types.OwnershipControlsRule{
				{ObjectOwnership: types.ObjectOwnership(ownership)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to put ownership controls on bucket %s: %w", bucket, err)
	}
	return nil
}

// PutBucketCORS replaces the bucket's CORS configuration.
func (c *Client) PutBucketCORS(ctx context.Context, bucket string, rules []CORSRule) error {
	out := make([]types.CORSRule, 0, len(rules))
	for _, r := range rules {
		rule := types.CORSRule{
			AllowedMethods: r.AllowedMethods,
			AllowedOrigins: r.AllowedOrigins,
			AllowedHeaders: r.AllowedHeaders,
			ExposeHeaders:  r.ExposeHeaders,
		}
		if r.MaxAgeSeconds > 0 {
			rule.MaxAgeSeconds = aws.Int32(r.MaxAgeSeconds)
		}
		out = append(out, rule)
	}
	_, err := c.s3.PutBucketCors(ctx, &s3.PutBucketCorsInput{
		Bucket:            aws.String(bucket),
		CORSConfiguration: &types.CORSConfiguration{CORSRules: out},
	})
	if err != nil {
		return fmt.Errorf("failed to put CORS configuration on bucket %s: %w", bucket, err)
	}
	return nil
}
