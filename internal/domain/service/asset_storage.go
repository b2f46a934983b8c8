package service

import (
	"context"
	"io"
)

// AssetStorage stores uploaded images (brand and product pictures) in a
// cloud bucket and returns the public URL under which they are served.
type AssetStorage interface {
	// Store writes the content under the given object name and returns its
	// public URL.
	Store(ctx context.Context, name, contentType string, content io.Reader) (string, error)
}
