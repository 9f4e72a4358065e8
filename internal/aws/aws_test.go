// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3Cache_RequiresBucket(t *testing.T) {
	_, err := NewS3Cache(context.Background(), "", "aoc")
	assert.EqualError(t, err, "s3 cache needs a bucket")
}

func TestNewS3Cache(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIDEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent")

	c, err := NewS3Cache(context.Background(), "inputs", "aoc", WithRegion("eu-west-1"))
	require.NoError(t, err)
	assert.Equal(t, "inputs", c.Bucket)
	assert.Equal(t, "aoc", c.Prefix)
	assert.NotNil(t, c.Client)
}

func TestLoadAWSConfig_Region(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent")

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("eu-west-1"))
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
}
