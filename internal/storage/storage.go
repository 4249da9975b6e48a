// Package storage persists uploaded document bytes in S3-compatible object
// storage and hands out time-limited signed URLs for reads.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// ObjectStore is the contract handlers depend on; the S3 implementation lives
// in this package, tests substitute an in-memory fake.
type ObjectStore interface {
	// Upload writes the object at key, overwriting any previous object with
	// the same key.
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	// SignedURL returns a URL granting read access to key for the given TTL.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	// Delete removes the object at key.
	Delete(ctx context.Context, key string) error
}

// BuildKey constructs the object key for a property document. Repeated uploads
// of the same filename for the same property share a key and overwrite.
func BuildKey(propertyID int64, filename string) string {
	return fmt.Sprintf("property-files/%d/%s", propertyID, filename)
}
