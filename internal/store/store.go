// Package store models the document-store collaborator consumed by the
// reconciliation engine: insert/find/update-by-filter semantics over named
// collections. The engine never assumes exclusivity; conditional filters make
// the read-modify-write sequences optimistic.
package store

import (
	"context"
)

// Filter selects documents by exact field equality.
type Filter map[string]any

// Document is one stored record.
type Document map[string]any

// Store is the collaborator interface. Only the reconciliation side uses it;
// extraction has no store dependency at all.
type Store interface {
	// Find returns every document in the collection matching the filter.
	Find(ctx context.Context, collection string, filter Filter) ([]Document, error)

	// FindOne returns the first matching document, or nil when none matches.
	FindOne(ctx context.Context, collection string, filter Filter) (Document, error)

	// UpdateOne applies the changes to the first matching document and
	// reports whether a document was matched and modified. A false return
	// with nil error means the filter matched nothing, which callers use as
	// the optimistic-concurrency signal.
	UpdateOne(ctx context.Context, collection string, filter Filter, changes Filter) (bool, error)

	// Insert adds a document to the collection.
	Insert(ctx context.Context, collection string, doc Document) error
}
