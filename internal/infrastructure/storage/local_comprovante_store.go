package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"controle_faturas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// PublicPrefix is the URL prefix stored proof files are served under.
const PublicPrefix = "/uploads"

// LocalComprovanteStore keeps proof-of-payment files on the local filesystem
// under a single directory. Names are freshly generated UUIDs keeping the
// original extension, so concurrent uploads never collide and a hostile
// original filename never reaches the disk.

type LocalComprovanteStore struct {
	dir string
}

var _ interfaces.IComprovanteStore = (*LocalComprovanteStore)(nil)

// NewLocalComprovanteStore creates dir when missing.
func NewLocalComprovanteStore(dir string) (*LocalComprovanteStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir %s: %w", dir, err)
	}
	return &LocalComprovanteStore{dir: dir}, nil
}

// Dir returns the backing directory, for wiring the static file route.
func (s *LocalComprovanteStore) Dir() string { return s.dir }

func (s *LocalComprovanteStore) Save(ctx context.Context, extensao string, conteudo io.Reader) (string, error) {
	nome := uuid.NewString() + strings.ToLower(extensao)
	destino := filepath.Join(s.dir, nome)

	f, err := os.OpenFile(destino, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create comprovante: %w", err)
	}
	if _, err := io.Copy(f, conteudo); err != nil {
		f.Close()
		os.Remove(destino)
		return "", fmt.Errorf("write comprovante: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(destino)
		return "", fmt.Errorf("close comprovante: %w", err)
	}
	return PublicPrefix + "/" + nome, nil
}

// Remove deletes the file behind a public path. Paths outside the store's own
// prefix (or trying to escape the directory) are rejected.
func (s *LocalComprovanteStore) Remove(path string) error {
	nome := strings.TrimPrefix(path, PublicPrefix+"/")
	if nome == path || nome == "" || nome != filepath.Base(nome) {
		return fmt.Errorf("refusing to remove %q: not a stored comprovante path", path)
	}
	if err := os.Remove(filepath.Join(s.dir, nome)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
