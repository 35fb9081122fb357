package patient

import "context"

// Repository is the canonical store of admission records. GetAll returns a
// snapshot; callers must not assume it tracks later writes.
type Repository interface {
	GetAll(ctx context.Context) ([]*Record, error)
	GetByID(ctx context.Context, id string) (*Record, error)
	// Create stores the record, assigning a unique ID and the initial
	// clinical status when they are unset. New records go to the front of
	// the collection.
	Create(ctx context.Context, rec *Record) error
	// Update replaces the stored record with the same ID.
	Update(ctx context.Context, rec *Record) error
}
