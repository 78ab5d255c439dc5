package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeName(t *testing.T) {
	assert.Equal(t, "rate_con.pdf", SafeName("rate con.pdf"))
	assert.Equal(t, "passwd", SafeName("../../etc/passwd"))
	assert.Equal(t, "upload", SafeName("///"))
	assert.Equal(t, "bol-42.PDF", SafeName("bol-42.PDF"))
}

func TestSaveLayoutAndContent(t *testing.T) {
	root := t.TempDir()
	s := NewStore(root, nil)
	s.now = func() time.Time { return time.Date(2025, 9, 14, 10, 0, 0, 0, time.UTC) }

	driverID := uuid.New()
	rel, err := s.Save(driverID, "rate con.pdf", []byte("pdf bytes"))
	require.NoError(t, err)

	parts := strings.Split(filepath.ToSlash(rel), "/")
	require.Len(t, parts, 4)
	assert.Equal(t, "2025", parts[0])
	assert.Equal(t, "09", parts[1])
	assert.Equal(t, driverID.String(), parts[2])
	assert.True(t, strings.HasSuffix(parts[3], "-rate_con.pdf"))

	got, err := os.ReadFile(s.Abs(rel))
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), got)
	assert.True(t, s.Exists(rel))
	assert.False(t, s.Exists("2025/09/nope.pdf"))
}

func TestSaveReaderHashes(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	rel, hash, size, err := s.SaveReader(uuid.New(), "pod.jpg", strings.NewReader("image bytes"))
	require.NoError(t, err)

	assert.NotEmpty(t, rel)
	assert.Equal(t, HashBytes([]byte("image bytes")), hash)
	assert.Equal(t, len("image bytes"), size)
}

func TestHashBytesStable(t *testing.T) {
	assert.Equal(t, HashBytes([]byte("abc")), HashBytes([]byte("abc")))
	assert.NotEqual(t, HashBytes([]byte("abc")), HashBytes([]byte("abd")))
	assert.Len(t, HashBytes(nil), 32)
}
