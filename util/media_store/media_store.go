package media_store

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/spf13/afero"
)

const (
	CategorySongs  = "songs"
	CategoryCovers = "covers"

	stagingDir = ".staging"
)

// Store 基于 afero 的媒体存储，root 下按类别分目录
type Store struct {
	fs      afero.Fs
	root    string
	baseURL string
}

func NewStore(fs afero.Fs, root, baseURL string) *Store {
	return &Store{
		fs:      fs,
		root:    filepath.Clean(root),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *Store) Stage(src io.Reader, filename string) (music_interface.StagedUpload, error) {
	dir := filepath.Join(s.root, stagingDir)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建暂存目录失败: %w", err)
	}

	f, err := afero.TempFile(s.fs, dir, "upload-*"+strings.ToLower(filepath.Ext(filename)))
	if err != nil {
		return nil, fmt.Errorf("创建暂存文件失败: %w", err)
	}
	staged := &stagedFile{fs: s.fs, file: f, filename: filename}

	n, err := io.Copy(f, src)
	if err != nil {
		_ = staged.Cleanup()
		return nil, fmt.Errorf("写入暂存文件失败: %w", err)
	}
	staged.size = n

	if err := staged.Rewind(); err != nil {
		_ = staged.Cleanup()
		return nil, err
	}
	return staged, nil
}

func (s *Store) Save(category, ext string, src io.Reader) (string, error) {
	if category != CategorySongs && category != CategoryCovers {
		return "", fmt.Errorf("unknown media category: %s", category)
	}
	rel := path.Join(category, uuid.NewString()+strings.ToLower(ext))
	full := filepath.Join(s.root, filepath.FromSlash(rel))

	if err := s.fs.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("创建媒体目录失败: %w", err)
	}
	if err := afero.WriteReader(s.fs, full, src); err != nil {
		_ = s.fs.Remove(full)
		return "", fmt.Errorf("写入媒体文件失败: %w", err)
	}
	return rel, nil
}

// Remove 文件不存在视为成功
func (s *Store) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	clean := path.Clean("/" + rel)
	if clean == "/" {
		return fmt.Errorf("invalid media path: %q", rel)
	}
	err := s.fs.Remove(filepath.Join(s.root, filepath.FromSlash(clean)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("删除媒体文件失败: %w", err)
	}
	return nil
}

func (s *Store) URL(rel string) string {
	return s.baseURL + "/" + strings.TrimLeft(rel, "/")
}

// HTTPDir 只读暴露某一类别目录
func (s *Store) HTTPDir(category string) http.FileSystem {
	return afero.NewHttpFs(s.fs).Dir(filepath.Join(s.root, category))
}

type stagedFile struct {
	fs       afero.Fs
	file     afero.File
	filename string
	size     int64

	once       sync.Once
	cleanupErr error
}

func (f *stagedFile) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

func (f *stagedFile) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

func (f *stagedFile) Filename() string { return f.filename }

func (f *stagedFile) Size() int64 { return f.size }

func (f *stagedFile) Rewind() error {
	if _, err := f.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("重置暂存文件失败: %w", err)
	}
	return nil
}

func (f *stagedFile) Cleanup() error {
	f.once.Do(func() {
		name := f.file.Name()
		_ = f.file.Close()
		if err := f.fs.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			f.cleanupErr = err
		}
	})
	return f.cleanupErr
}
