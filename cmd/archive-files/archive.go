package main

import (
	"archive/zip"
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Defaults
const (
	defaultOutput  = "archive.zip"
	copyBufferSize = 4 * 1024
)

var (
	errNoFiles        = errors.New("no input files")
	errDuplicateEntry = errors.New("duplicate archive entry")
)

// archiveStats summarizes a written archive.
type archiveStats struct {
	files int
	bytes int64
}

// archiveFiles writes a new zip archive at output containing every file in
// paths. The archive is removed again if any file cannot be added.
func archiveFiles(output string, paths []string, verbose bool) (stats *archiveStats, err error) {
	out, err := os.Create(output)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
		if err != nil {
			_ = os.Remove(output)
		}
	}()

	buffered := bufio.NewWriter(out)
	stats, err = writeArchive(buffered, paths, verbose)
	if err != nil {
		return nil, err
	}
	if err := buffered.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write archive: %w", err)
	}
	return stats, nil
}

// writeArchive streams the zip archive of paths to w.
func writeArchive(w io.Writer, paths []string, verbose bool) (*archiveStats, error) {
	zw := zip.NewWriter(w)
	stats := &archiveStats{}
	seen := make(map[string]string, len(paths))
	buf := make([]byte, copyBufferSize)

	for _, path := range paths {
		name := filepath.Base(path)
		if prev, ok := seen[name]; ok {
			_ = zw.Close()
			return nil, fmt.Errorf("%w: %s and %s both map to %q", errDuplicateEntry, prev, path, name)
		}
		seen[name] = path

		n, err := addFile(zw, path, name, buf)
		if err != nil {
			_ = zw.Close()
			return nil, err
		}
		stats.files++
		stats.bytes += n

		if verbose {
			log.Printf("Added %s (%d bytes)", name, n)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return stats, nil
}

// addFile copies the file at path into a new deflated entry called name.
func addFile(zw *zip.Writer, path, name string, buf []byte) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", path)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return 0, fmt.Errorf("failed to build header for %s: %w", path, err)
	}
	header.Name = name
	header.Method = zip.Deflate

	entry, err := zw.CreateHeader(header)
	if err != nil {
		return 0, fmt.Errorf("failed to add %s: %w", name, err)
	}

	n, err := io.CopyBuffer(entry, f, buf)
	if err != nil {
		return n, fmt.Errorf("failed to copy %s: %w", path, err)
	}
	return n, nil
}
