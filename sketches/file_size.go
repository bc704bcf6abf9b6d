package sketches

import (
	"github.com/go-sif/hiero"
)

// FileInfo summarizes a set of files
type FileInfo struct {
	FileCount int
	TotalSize int64
}

// ToValue represents a FileInfo as a mapping
func (i *FileInfo) ToValue() interface{} {
	return map[string]interface{}{
		"fileCount": i.FileCount,
		"totalSize": i.TotalSize,
	}
}

// FileSizeSketch counts files and their total size
type FileSizeSketch struct{}

// FileSize creates a FileSizeSketch
func FileSize() *FileSizeSketch {
	return &FileSizeSketch{}
}

// Zero returns an empty FileInfo
func (s *FileSizeSketch) Zero() *FileInfo {
	return &FileInfo{}
}

// Create describes a single file
func (s *FileSizeSketch) Create(loader hiero.FileLoader) (*FileInfo, error) {
	return &FileInfo{FileCount: 1, TotalSize: loader.SizeInBytes()}, nil
}

// Add combines two FileInfos
func (s *FileSizeSketch) Add(left *FileInfo, right *FileInfo) (*FileInfo, error) {
	return &FileInfo{FileCount: left.FileCount + right.FileCount, TotalSize: left.TotalSize + right.TotalSize}, nil
}
