package media

import (
	"context"
	"io"
)

// ObjectStore persists binary objects under string keys.
//
//go:generate mockgen -package mockmedia -source=interface.go -destination=mock/mockmedia.go *
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
}

// Processor turns an uploaded image into stored variants.
type Processor interface {
	// Process decodes data, uploads the original with its web and thumbnail
	// variants and returns where they were stored. Nothing stays uploaded when
	// it fails.
	Process(ctx context.Context, data []byte, target Target) (Variants, error)
	// Remove deletes every object of v. It attempts all deletes and returns
	// the joined errors.
	Remove(ctx context.Context, v Variants) error
}
