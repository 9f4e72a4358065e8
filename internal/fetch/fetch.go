// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-cleanhttp"
)

// ErrNotFound is returned when the endpoint answers 404.
var ErrNotFound = errors.New("not found")

// DefaultClient is used when Get is handed a nil client.
var DefaultClient = cleanhttp.DefaultClient()

// Get issues a GET for url with the session cookie attached and returns the
// body. Only a 404 is treated as a failure status; everything else is read
// and returned as-is.
func Get(ctx context.Context, client *http.Client, url, session string) (string, error) {
	if client == nil {
		client = DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Cookie", "session="+session)

	log.Debugf("GET %s", url)
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%s: %w", url, ErrNotFound)
	}

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	log.Debugf("fetched %s (%s, status %d)", url, humanize.Bytes(uint64(doc.Len())), resp.StatusCode)

	return doc.String(), nil
}
