// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the slice of the S3 client the cache uses.
type S3API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 keeps entries as objects under Bucket/Prefix so several machines can
// share one set of downloaded inputs.
type S3 struct {
	Ctx    context.Context
	Client S3API
	Bucket string
	Prefix string
}

func (c *S3) objectKey(key string) string {
	if c.Prefix == "" {
		return key
	}
	return path.Join(strings.Trim(c.Prefix, "/"), key)
}

func (c *S3) ctx() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

func (c *S3) Exists(key string) (bool, error) {
	_, err := c.Client.HeadObject(c.ctx(), &s3.HeadObjectInput{
		Bucket: aws.String(c.Bucket),
		Key:    aws.String(c.objectKey(key)),
	})
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to head s3://%s/%s: %w", c.Bucket, c.objectKey(key), err)
}

func (c *S3) Read(key string) (string, error) {
	out, err := c.Client.GetObject(c.ctx(), &s3.GetObjectInput{
		Bucket: aws.String(c.Bucket),
		Key:    aws.String(c.objectKey(key)),
	})
	if err != nil {
		if isNotFound(err) {
			return "", fmt.Errorf("%s: %w", key, ErrMiss)
		}
		return "", fmt.Errorf("failed to get s3://%s/%s: %w", c.Bucket, c.objectKey(key), err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read s3 object body: %w", err)
	}
	return string(b), nil
}

func (c *S3) Write(key, value string) error {
	if _, err := c.Client.PutObject(c.ctx(), &s3.PutObjectInput{
		Bucket:      aws.String(c.Bucket),
		Key:         aws.String(c.objectKey(key)),
		Body:        strings.NewReader(value),
		ContentType: aws.String("text/plain; charset=utf-8"),
	}); err != nil {
		return fmt.Errorf("failed to put s3://%s/%s: %w", c.Bucket, c.objectKey(key), err)
	}
	log.Debugf("cached s3://%s/%s", c.Bucket, c.objectKey(key))
	return nil
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	var nsk *types.NoSuchKey
	return errors.As(err, &nf) || errors.As(err, &nsk)
}
