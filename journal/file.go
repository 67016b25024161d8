package journal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// ExportFile writes to "<path>.part" and renames it into place on Close,
// so a failed export never leaves a truncated file behind. Paths ending
// in ".xz" are xz-compressed.
type ExportFile struct {
	path string
	tmp  string
	f    *os.File
	zw   *xz.Writer
	w    io.Writer
}

// CreateExportFile opens path for an export.
func CreateExportFile(path string) (*ExportFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	tmp := path + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return nil, err
	}

	ef := &ExportFile{path: path, tmp: tmp, f: f, w: f}
	if strings.EqualFold(filepath.Ext(path), ".xz") {
		zw, err := xz.NewWriter(f)
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
			return nil, fmt.Errorf("xz writer: %w", err)
		}
		ef.zw = zw
		ef.w = zw
	}
	return ef, nil
}

func (e *ExportFile) Write(p []byte) (int, error) {
	return e.w.Write(p)
}

// Abort discards the partial file.
func (e *ExportFile) Abort() {
	if e.zw != nil {
		_ = e.zw.Close()
	}
	_ = e.f.Close()
	_ = os.Remove(e.tmp)
}

// Close flushes and moves the file to its final path.
func (e *ExportFile) Close() error {
	if e.zw != nil {
		if err := e.zw.Close(); err != nil {
			_ = e.f.Close()
			_ = os.Remove(e.tmp)
			return err
		}
	}
	if err := e.f.Close(); err != nil {
		_ = os.Remove(e.tmp)
		return err
	}
	if err := os.Rename(e.tmp, e.path); err != nil {
		_ = os.Remove(e.tmp)
		return err
	}
	return nil
}
