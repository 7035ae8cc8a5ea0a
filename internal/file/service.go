package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/transform"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrIsDirectory  = errors.New("path is a directory")
)

// fileService implements Service on the local filesystem
type fileService struct{}

// NewService creates a new file service
func NewService() Service {
	return &fileService{}
}

// OpenReader opens a file for reading. Byte sequences invalid in the
// encoding are replaced with U+FFFD rather than failing the read.
func (f *fileService) OpenReader(filePath, encoding string) (Reader, error) {
	enc, err := LookupEncoding(encoding)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}
	if stat.IsDir() {
		file.Close()
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, filePath)
	}

	return &fileReader{
		file:    file,
		decoded: transform.NewReader(file, enc.NewDecoder()),
		name:    stat.Name(),
	}, nil
}

// CreateWriter creates a file for writing
func (f *fileService) CreateWriter(dstPath, encoding string) (Writer, error) {
	enc, err := LookupEncoding(encoding)
	if err != nil {
		return nil, err
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(dstPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return &fileWriter{
		file:    file,
		encoded: transform.NewWriter(file, enc.NewEncoder()),
	}, nil
}

// GetFileInfo returns information about a file
func (f *fileService) GetFileInfo(filePath string) (Info, error) {
	stat, err := os.Stat(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
		}
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	return &fileInfo{
		name:  stat.Name(),
		size:  stat.Size(),
		isDir: stat.IsDir(),
	}, nil
}

// FormatFileSize formats file size in human readable format
func (f *fileService) FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// fileReader implements Reader
type fileReader struct {
	file    *os.File
	decoded io.Reader
	name    string
}

func (f *fileReader) Read(p []byte) (n int, err error) {
	return f.decoded.Read(p)
}

func (f *fileReader) Close() error {
	return f.file.Close()
}

func (f *fileReader) Name() string {
	return f.name
}

// fileWriter implements Writer
type fileWriter struct {
	file    *os.File
	encoded io.WriteCloser
}

func (f *fileWriter) Write(p []byte) (n int, err error) {
	return f.encoded.Write(p)
}

// Close flushes pending encoder output before closing the file
func (f *fileWriter) Close() error {
	if err := f.encoded.Close(); err != nil {
		f.file.Close()
		return fmt.Errorf("failed to flush encoded output: %w", err)
	}
	return f.file.Close()
}

// fileInfo implements Info
type fileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (f *fileInfo) Name() string {
	return f.name
}

func (f *fileInfo) Size() int64 {
	return f.size
}

func (f *fileInfo) IsDir() bool {
	return f.isDir
}
