package client

// LookupState says how a single-item fetch settled. Callers that follow
// the read policy treat NotFound and Unavailable the same (absent), but
// the two stay distinguishable for logging and fail-fast callers.
type LookupState int

const (
	LookupFound LookupState = iota
	LookupNotFound
	LookupUnavailable
)

// Lookup is the result of a single-item fetch. Value is non-nil only
// when State == LookupFound.
type Lookup[T any] struct {
	State LookupState
	Value *T
}

func (l Lookup[T]) Found() bool { return l.State == LookupFound }

// Absent reports the lossy read view: anything that is not a hit.
func (l Lookup[T]) Absent() bool { return l.State != LookupFound }

func found[T any](v *T) Lookup[T]   { return Lookup[T]{State: LookupFound, Value: v} }
func notFound[T any]() Lookup[T]    { return Lookup[T]{State: LookupNotFound} }
func unavailable[T any]() Lookup[T] { return Lookup[T]{State: LookupUnavailable} }
