package blob

import (
	"context"
	"io"
)

// Uploader sube un archivo al almacenamiento de objetos y devuelve la URL
// pública (lo que el expediente guarda como file_url).
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}
