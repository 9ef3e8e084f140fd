// Package archive unpacks page archives and scans them for images.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bodgit/sevenzip"

	"github.com/kavyabhat/scanlate/internal/config"
)

// Unpack extracts a .zip/.cbz/.7z archive into destDir. zip and cbz are
// the same container; 7z gets its own reader.
func Unpack(archivePath, destDir string) error {
	switch strings.ToLower(filepath.Ext(archivePath)) {
	case ".zip", ".cbz":
		return unpackZip(archivePath, destDir)
	case ".7z":
		return unpack7z(archivePath, destDir)
	default:
		return fmt.Errorf("unsupported archive format %q", filepath.Ext(archivePath))
	}
}

func unpackZip(archivePath, destDir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("open entry %s: %w", f.Name, err)
		}
		err = writeEntry(destDir, f.Name, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func unpack7z(archivePath, destDir string) error {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open 7z: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("open entry %s: %w", f.Name, err)
		}
		err = writeEntry(destDir, f.Name, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// writeEntry writes one archive entry under destDir, rejecting paths
// that would escape it.
func writeEntry(destDir, name string, r io.Reader) error {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("illegal entry path %q", name)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create entry dir: %w", err)
	}
	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create entry file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}
	return nil
}

// ScanImages walks root and returns every image file path, sorted by
// full path ascending. The order is user-visible as page order, so it
// must be stable and reproducible.
func ScanImages(root string) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isImage(path) {
			pages = append(pages, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan images: %w", err)
	}
	sort.Strings(pages)
	return pages, nil
}

func isImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range config.ImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
