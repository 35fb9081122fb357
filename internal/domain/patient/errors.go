package patient

import "errors"

// ErrNotFound is returned when a record id does not exist in the collection.
var ErrNotFound = errors.New("patient record not found")
