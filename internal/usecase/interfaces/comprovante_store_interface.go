package interfaces

import (
	"context"
	"io"
)

//go:generate mockgen -source=comprovante_store_interface.go -destination=mocks/comprovante_store_mock.go -package=mock_interfaces

// IComprovanteStore abstracts proof-of-payment file storage.
//
// Save writes conteudo under a freshly generated collision-proof name keeping
// extensao, and returns the public path ("/uploads/<name>") recorded on the
// invoice. Remove takes that same public path.
type IComprovanteStore interface {
	Save(ctx context.Context, extensao string, conteudo io.Reader) (string, error)
	Remove(path string) error
}
