// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"testing"

	"github.com/creachadair/jcheck/value"
)

// MustParse parses text as a JSON value, or fails t.
func MustParse(t testing.TB, text string) value.Value {
	t.Helper()
	v, err := value.Parse(text)
	if err != nil {
		t.Fatalf("Parse %q: %v", text, err)
	}
	return v
}

// MustGetArchive returns a reader for the zip archive cached at zipFile. If
// the file does not exist, it is first fetched from url.
func MustGetArchive(t testing.TB, url, zipFile string) *zip.Reader {
	t.Helper()

	if fi, err := os.Stat(zipFile); err == nil {
		zf, err := os.Open(zipFile)
		if err != nil {
			t.Fatalf("Open archive: %v", err)
		}
		t.Cleanup(func() { zf.Close() })
		zr, err := zip.NewReader(zf, fi.Size())
		if err != nil {
			t.Fatalf("Open reader: %v", err)
		}
		return zr
	} else if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Stat archive: %v", err)
	}

	t.Logf("Fetching %q ...", url)
	rsp, err := http.Get(url)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	defer rsp.Body.Close()
	if ctype := rsp.Header.Get("content-type"); ctype != "application/zip" {
		t.Fatalf("Unexpected content-type: %q", ctype)
	}

	zf, err := os.Create(zipFile)
	if err != nil {
		t.Fatalf("Create output: %v", err)
	}
	t.Cleanup(func() { zf.Close() })

	size, err := io.Copy(zf, rsp.Body)
	if err != nil {
		t.Fatalf("Write output: %v", err)
	}
	zr, err := zip.NewReader(zf, size)
	if err != nil {
		t.Fatalf("Open reader: %v", err)
	}
	return zr
}

// ReadZipFile reads the complete contents of zf, or fails t.
func ReadZipFile(t testing.TB, zf *zip.File) []byte {
	t.Helper()
	rc, err := zf.Open()
	if err != nil {
		t.Fatalf("Open %q: %v", zf.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("Read %q: %v", zf.Name, err)
	}
	return data
}
