// Package ingest reads sample tables from CSV exports, local or remote.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/antennalabs/patterncmp/internal/pattern"
)

// ReadTable parses a CSV stream into a table. Header names are trimmed of
// incidental whitespace; every data cell must parse as a float. The csv
// reader enforces a consistent field count per row.
func ReadTable(r io.Reader, name string) (*pattern.Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("table %q: read header: %w", name, err)
	}

	fields := make([]string, len(header))
	for i, h := range header {
		fields[i] = strings.TrimSpace(h)
	}

	t := &pattern.Table{Name: name, Fields: fields}
	for rowNum := 1; ; rowNum++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table %q: row %d: %w", name, rowNum, err)
		}

		row := make([]float64, len(record))
		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("table %q: row %d, column %q: parse %q: %w", name, rowNum, fields[i], cell, err)
			}
			row[i] = v
		}
		t.Rows = append(t.Rows, row)
	}

	log.Debug().Str("table", name).Int("rows", t.Len()).Int("fields", len(t.Fields)).Msg("table loaded")
	return t, nil
}

// ReadTableFile reads a CSV file from disk, transparently decompressing
// .gz and .zst inputs. The table is named after the file.
func ReadTableFile(path string) (*pattern.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()

	name := filepath.Base(path)
	var r io.Reader = f

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("table %q: gzip: %w", name, err)
		}
		defer gz.Close()
		r = gz
		name = strings.TrimSuffix(name, filepath.Ext(name))
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("table %q: zstd: %w", name, err)
		}
		defer zr.Close()
		r = zr
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	return ReadTable(r, name)
}
