// internal/domain/cart/persister_port.go
package cart

import "context"

// Persister is the persistence port for the cart store.
//
// Storage convention (shared with the auth-session store):
// - one document per store name
// - document body: {"state": <State>, "version": N}
// - Save always overwrites the whole document (no append log)
//
// Not-found / corrupt-state handling:
// - Load returns (State{}, false, nil) when the document is missing or its
//   "state" field cannot be decoded; the caller starts from an empty store.
// - Errors are reserved for backend I/O failures.
type Persister interface {
	Save(ctx context.Context, name string, state State) error
	Load(ctx context.Context, name string) (State, bool, error)
}
