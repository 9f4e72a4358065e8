// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cache

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/aocread/internal/config"
)

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "default host",
			url:  "https://adventofcode.com/2000/day/1/input",
			want: "adventofcodecom2000day1input",
		},
		{
			name: "two digit level",
			url:  "https://adventofcode.com/2039/day/14/input",
			want: "adventofcodecom2039day14input",
		},
		{
			name: "plain http loses one host character",
			url:  "http://127.0.0.1:8080/2000/day/1/input",
			want: "2700180802000day1input",
		},
		{
			name: "pipe stripped",
			url:  "https://a|b.com/1",
			want: "abcom1",
		},
		{
			name: "too short",
			url:  "http:",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromURL(tt.url))
		})
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
	}

	for _, tt := range tests {
		t.Run("AOC_CACHE="+tt.value, func(t *testing.T) {
			t.Setenv("AOC_CACHE", tt.value)
			assert.Equal(t, tt.want, Enabled())
		})
	}
}

func TestEnabled_FromConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "aocread.yaml")
	require.NoError(t, os.WriteFile(p, []byte("cache:\n  enabled: false\n"), 0o600))
	t.Setenv("AOCREAD_CFG", p)
	t.Setenv("AOC_CACHE", "")
	t.Cleanup(func() { config.Config = config.Type{} })

	_, err := config.Load()
	require.NoError(t, err)
	assert.False(t, Enabled())

	t.Setenv("AOC_CACHE", "1")
	assert.True(t, Enabled(), "AOC_CACHE wins over the config file")
}

func TestNop(t *testing.T) {
	var c Cache = Nop{}
	require.NoError(t, c.Write("k", "v"))
	ok, err := c.Exists("k")
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = c.Read("k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestDir_EnsureDirIsIdempotent(t *testing.T) {
	root := filepath.Join(t.TempDir(), "aoc-cache")
	d := NewDir(root)

	require.NoError(t, d.EnsureDir())
	require.NoError(t, d.EnsureDir())

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDir_ExistsCreatesDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "aoc-cache")
	d := NewDir(root)

	ok, err := d.Exists("adventofcodecom2000day1input")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = os.Stat(root)
	assert.NoError(t, err)
}

func TestDir_WriteThenRead(t *testing.T) {
	d := NewDir(t.TempDir())
	key := "adventofcodecom2000day1input"

	require.NoError(t, d.Write(key, "1\n2\n3\n"))

	ok, err := d.Exists(key)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := d.Read(key)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", got, "content must come back verbatim")

	raw, err := os.ReadFile(filepath.Join(d.Root, key))
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", string(raw))
}

func TestDir_ReadMiss(t *testing.T) {
	d := NewDir(t.TempDir())
	_, err := d.Read("missing")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestDir_DefaultRoot(t *testing.T) {
	assert.Equal(t, DefaultDir, NewDir("").Root)
	assert.Equal(t, filepath.Join("aoc-cache", "k"), NewDir("").Path("k"))
}

func TestDir_Entries(t *testing.T) {
	d := NewDir(t.TempDir())
	require.NoError(t, d.Write("b", "22"))
	require.NoError(t, d.Write("a", "1"))
	require.NoError(t, os.Mkdir(filepath.Join(d.Root, "sub"), 0o755))

	entries, err := d.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Key)
	assert.Equal(t, int64(1), entries[0].Size)
	assert.Equal(t, "b", entries[1].Key)
	assert.Equal(t, int64(2), entries[1].Size)
}

func TestDir_EntriesMissingDir(t *testing.T) {
	d := NewDir(filepath.Join(t.TempDir(), "nope"))
	entries, err := d.Entries()
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemory(t *testing.T) {
	m := NewMemory(map[string]string{"seed": "x"})
	assert.Equal(t, 1, m.Len())

	ok, err := m.Exists("seed")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, m.Write("k", "v"))
	got, err := m.Read("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	_, err = m.Read("nope")
	assert.ErrorIs(t, err, ErrMiss)

	var zero Memory
	require.NoError(t, zero.Write("k", "v"))
	assert.Equal(t, 1, zero.Len())
}

type fakeS3 struct {
	objects map[string]string
	puts    int
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	v, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(v))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = string(b)
	f.puts++
	return &s3.PutObjectOutput{}, nil
}

func TestS3(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{}}
	c := &S3{Client: fake, Bucket: "inputs", Prefix: "/aoc/"}

	ok, err := c.Exists("adventofcodecom2000day1input")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.Read("adventofcodecom2000day1input")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Write("adventofcodecom2000day1input", "1\n2\n3"))
	assert.Equal(t, 1, fake.puts)
	assert.Contains(t, fake.objects, "inputs/aoc/adventofcodecom2000day1input")

	ok, err = c.Exists("adventofcodecom2000day1input")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := c.Read("adventofcodecom2000day1input")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3", got)
}

type brokenS3 struct{ *fakeS3 }

func (brokenS3) HeadObject(context.Context, *s3.HeadObjectInput, ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	return nil, errors.New("access denied")
}

func TestS3_ExistsPropagatesOtherErrors(t *testing.T) {
	c := &S3{Client: brokenS3{}, Bucket: "inputs"}
	_, err := c.Exists("k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.NotErrorIs(t, err, ErrMiss)
}
