package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"beach-reserve/internal/pkg/config"
	"beach-reserve/internal/pkg/errs"
)

// LocalStorage keeps uploaded media on the local filesystem and serves it
// through the router's static mount. Swappable for object storage behind
// the same interface.
type LocalStorage struct {
	rootDir string
	baseURL string
}

func NewLocalStorage(cfg config.MediaConfig) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.RootDir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create media root")
	}
	return &LocalStorage{
		rootDir: cfg.RootDir,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

func (s *LocalStorage) Save(_ context.Context, dir, filename string, content io.Reader) (string, error) {
	// filepath.Base strips any path components a client smuggles in.
	safeName := filepath.Base(filename)
	targetDir := filepath.Join(s.rootDir, dir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", errs.Wrap(err, "failed to create media directory")
	}

	target := filepath.Join(targetDir, safeName)
	f, err := os.Create(target)
	if err != nil {
		return "", errs.Wrap(err, "failed to create media file")
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", errs.Wrap(err, "failed to write media file")
	}

	return s.baseURL + "/" + dir + "/" + safeName, nil
}
