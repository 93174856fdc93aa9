package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const defaultMaxFileSize = 5 * 1024 * 1024

// FileWriter appends to a log file and moves it aside to "<name>.1" once it
// exceeds MaxSize. Only one backup is kept.
type FileWriter struct {
	mu      sync.Mutex
	path    string
	maxSize int64
	file    *os.File
	size    int64
}

// OpenFile opens (or creates) the log file at path, creating parent dirs.
// maxSize <= 0 selects the default of 5 MiB.
func OpenFile(path string, maxSize int64) (*FileWriter, error) {
	if maxSize <= 0 {
		maxSize = defaultMaxFileSize
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	w := &FileWriter{path: path, maxSize: maxSize}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *FileWriter) open() error {
	if info, err := os.Stat(w.path); err == nil {
		w.size = info.Size()
	} else {
		w.size = 0
	}
	file, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	w.file = file
	return nil
}

func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		if err := w.open(); err != nil {
			return 0, err
		}
	}
	if w.size > 0 && w.size+int64(len(p)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

func (w *FileWriter) rotate() error {
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	w.file = nil
	if err := os.Rename(w.path, w.path+".1"); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	return w.open()
}

// Path returns the file being written.
func (w *FileWriter) Path() string {
	return w.path
}

func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
