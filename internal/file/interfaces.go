package file

import (
	"io"
)

// Service handles encoded file access for code import and export
type Service interface {
	// OpenReader opens a file and decodes it from the named encoding to UTF-8
	OpenReader(filePath, encoding string) (Reader, error)

	// CreateWriter creates a file (and its parent directories) that encodes UTF-8 input
	CreateWriter(dstPath, encoding string) (Writer, error)

	// GetFileInfo returns information about a file
	GetFileInfo(filePath string) (Info, error)

	// FormatFileSize formats file size in human readable format
	FormatFileSize(size int64) string
}

// Reader represents a decoded file opened for reading
type Reader interface {
	io.Reader
	io.Closer

	// Name returns the file name
	Name() string
}

// Writer represents an encoding file opened for writing
type Writer interface {
	io.Writer
	io.Closer
}

// Info contains file metadata
type Info interface {
	Name() string
	Size() int64
	IsDir() bool
}
