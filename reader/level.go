// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package reader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/staranto/aocread/cache"
	"github.com/staranto/aocread/internal/fetch"
)

// DefaultHost is the Advent of Code site.
const DefaultHost = "https://adventofcode.com"

// SessionEnv names the environment variable NewClientFromEnv reads.
const SessionEnv = "AOC_SESSION"

// Client holds everything a remote read depends on. Nothing is read from
// the process environment once a Client exists.
type Client struct {
	Host       string
	Session    string
	Now        func() time.Time
	Cache      cache.Cache
	HTTPClient *http.Client
}

// Option customizes a Client built by NewClient.
type Option func(*Client)

// WithHost overrides DefaultHost.
func WithHost(host string) Option {
	return func(c *Client) { c.Host = host }
}

// WithSession sets the session cookie value.
func WithSession(session string) Option {
	return func(c *Client) { c.Session = session }
}

// WithClock sets the clock used to pick the default year.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.Now = now }
}

// WithCache replaces the default on-disk cache.
func WithCache(cc cache.Cache) Option {
	return func(c *Client) { c.Cache = cc }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// NewClient returns a Client for DefaultHost that caches in ./aoc-cache and
// uses the wall clock. It carries no session unless one is given.
func NewClient(opts ...Option) *Client {
	c := &Client{
		Host:  DefaultHost,
		Now:   time.Now,
		Cache: cache.NewDir(cache.DefaultDir),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromEnv is NewClient with the session taken from AOC_SESSION.
// Later options win over the environment.
func NewClientFromEnv(opts ...Option) *Client {
	return NewClient(append([]Option{WithSession(os.Getenv(SessionEnv))}, opts...)...)
}

// LevelOptions configures ReadLevel. Year 0 means the current year and
// Parser is required.
type LevelOptions[T any] struct {
	Level    int
	Year     int
	Splitter *regexp.Regexp
	Parser   ParseFunc[T]
}

// URL builds the input URL for level in year, defaulting year to the
// current one.
func (c *Client) URL(level, year int) string {
	if c == nil {
		c = NewClientFromEnv()
	}
	if year == 0 {
		year = c.now().Year()
	}
	host := c.Host
	if host == "" {
		host = DefaultHost
	}
	return fmt.Sprintf("%s/%d/day/%d/input", strings.TrimRight(host, "/"), year, level)
}

// CacheKey is the cache key for level in year.
func (c *Client) CacheKey(level, year int) string {
	return cache.KeyFromURL(c.URL(level, year))
}

func (c *Client) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *Client) store() cache.Cache {
	if c.Cache == nil {
		return cache.Nop{}
	}
	return c.Cache
}

// Fetch returns the raw input for level. A cached copy is returned verbatim
// without touching the network or looking at the session. On a miss the
// input is downloaded and cached before being returned; a 404 is never
// cached and a failed cache write fails the read. A nil Client behaves like
// NewClientFromEnv().
func (c *Client) Fetch(ctx context.Context, level, year int) (string, error) {
	if c == nil {
		c = NewClientFromEnv()
	}
	if level < 1 {
		return "", fmt.Errorf("%d: %w", level, ErrInvalidLevel)
	}

	url := c.URL(level, year)
	key := cache.KeyFromURL(url)
	cc := c.store()

	hit, err := cc.Exists(key)
	if err != nil {
		return "", err
	}
	if hit {
		log.Debugf("cache hit: %s", key)
		return cc.Read(key)
	}
	log.Debugf("cache miss: %s", key)

	if c.Session == "" {
		return "", ErrSessionNotSet
	}

	body, err := fetch.Get(ctx, c.HTTPClient, url, c.Session)
	if err != nil {
		if errors.Is(err, fetch.ErrNotFound) {
			return "", fmt.Errorf("%w: %w", ErrLevelNotFound, err)
		}
		return "", err
	}

	if err := cc.Write(key, body); err != nil {
		return "", fmt.Errorf("failed to cache %s: %w", key, err)
	}

	return body, nil
}

// ReadLevel fetches (or recalls from cache) the input for opts.Level, splits
// it and returns what the parser makes of the lines. A nil c reads the
// session from AOC_SESSION and caches in ./aoc-cache.
func ReadLevel[T any](ctx context.Context, c *Client, opts LevelOptions[T]) (T, error) {
	var zero T

	if opts.Parser == nil {
		return zero, ErrNoParser
	}

	body, err := c.Fetch(ctx, opts.Level, opts.Year)
	if err != nil {
		return zero, err
	}

	return opts.Parser(Split(body, opts.Splitter)), nil
}
