// Package storage keeps uploaded documents on disk under a predictable
// layout: <root>/YYYY/MM/<driverID>/<uuid>-<safe-filename>. Content hashes
// let the upload path deduplicate identical bytes per driver.
package storage

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var reUnsafe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SafeName strips path separators and shell-hostile characters from an
// uploaded filename, keeping the extension readable.
func SafeName(name string) string {
	name = filepath.Base(name)
	name = reUnsafe.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "upload"
	}
	return name
}

// HashBytes returns the sha256 of the content, the identity used for
// per-driver deduplication.
func HashBytes(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

type Store struct {
	root   string
	logger *slog.Logger
	now    func() time.Time
}

func NewStore(root string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if root == "" {
		root = "uploads"
	}
	return &Store{root: root, logger: logger, now: time.Now}
}

// Save writes the content to its bucketed location and returns the path
// relative to the store root. The write goes through a temp file and rename
// so a crashed upload never leaves a partial document behind.
func (s *Store) Save(driverID uuid.UUID, filename string, content []byte) (string, error) {
	now := s.now().UTC()
	rel := filepath.Join(
		fmt.Sprintf("%04d", now.Year()),
		fmt.Sprintf("%02d", now.Month()),
		driverID.String(),
		uuid.NewString()+"-"+SafeName(filename),
	)
	abs := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(abs), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("close upload: %w", err)
	}
	if err := os.Rename(tmp.Name(), abs); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("finalize upload: %w", err)
	}

	s.logger.Debug("stored document", "path", rel, "bytes", len(content))
	return rel, nil
}

// SaveReader is Save for streamed content.
func (s *Store) SaveReader(driverID uuid.UUID, filename string, r io.Reader) (string, []byte, int, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", nil, 0, fmt.Errorf("read upload: %w", err)
	}
	rel, err := s.Save(driverID, filename, content)
	if err != nil {
		return "", nil, 0, err
	}
	return rel, HashBytes(content), len(content), nil
}

// Abs resolves a stored relative path against the store root.
func (s *Store) Abs(rel string) string {
	return filepath.Join(s.root, rel)
}

// Exists reports whether a stored path is still present on disk.
func (s *Store) Exists(rel string) bool {
	_, err := os.Stat(s.Abs(rel))
	return err == nil
}
