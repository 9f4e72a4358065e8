// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/staranto/aocread/cache"
	"github.com/staranto/aocread/internal/config"
)

// Formats lists the accepted --output values.
var Formats = []string{"text", "json", "raw", "yaml"}

// Options tweak text rendering.
type Options struct {
	Titles bool
	Color  bool
}

// Spit writes result to w in the given format.
func Spit(w io.Writer, format string, result any, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case "raw":
		_, err := io.WriteString(w, raw(result))
		return err
	case "json":
		b, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		return TextWriter(w, Rows(result), opts)
	}
}

// Rows flattens a parse result into display lines.
func Rows(result any) []string {
	switch v := result.(type) {
	case []string:
		return v
	case [][]string:
		rows := make([]string, len(v))
		for i, f := range v {
			rows[i] = strings.Join(f, " ")
		}
		return rows
	case []int:
		rows := make([]string, len(v))
		for i, n := range v {
			rows[i] = strconv.Itoa(n)
		}
		return rows
	default:
		return []string{InterfaceToString(result)}
	}
}

func raw(result any) string {
	switch v := result.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	default:
		return strings.Join(Rows(result), "\n")
	}
}

// TextWriter prints one row per line, or a numbered table when titles are
// requested.
func TextWriter(w io.Writer, rows []string, opts Options) error {
	if !opts.Titles {
		for _, r := range rows {
			if _, err := fmt.Fprintln(w, r); err != nil {
				return err
			}
		}
		return nil
	}

	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{strconv.Itoa(i + 1), r}
	}
	_, err := fmt.Fprintln(w, newTable(opts.Color, []string{"#", "LINE"}, data))
	return err
}

// CacheTable renders the entries of a disk cache.
func CacheTable(w io.Writer, entries []cache.Entry, opts Options, now time.Time) error {
	if len(entries) == 0 {
		return nil
	}

	data := make([][]string, len(entries))
	for i, e := range entries {
		data[i] = []string{e.Key, humanize.Bytes(uint64(e.Size)), humanize.RelTime(e.ModTime, now, "ago", "from now")}
	}

	var headers []string
	if opts.Titles {
		headers = []string{"KEY", "SIZE", "AGE"}
	}
	_, err := fmt.Fprintln(w, newTable(opts.Color, headers, data))
	return err
}

func newTable(color bool, headers []string, rows [][]string) *table.Table {
	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 1)
	log.Debugf("padding: %v", pad)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}
			if col > 0 {
				style = style.PaddingLeft(pad)
			}
			return style
		}).
		Rows(rows...)

	if len(headers) > 0 {
		t = t.Headers(headers...).BorderHeader(false)
	}
	return t
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// IsTerminal reports whether w is a terminal. Color only makes sense there.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
