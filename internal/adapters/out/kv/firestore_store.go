// internal/adapters/out/kv/firestore_store.go
package kv

import (
	"context"
	"errors"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "campusink/internal/domain/cart"
)

// DefaultStoreCollection is the Firestore collection holding store blobs
// (docId = store name).
const DefaultStoreCollection = "stores"

// FirestorePersister implements cart.Persister on a Firestore document per
// store name. Every Save overwrites the whole document.
type FirestorePersister struct {
	Client     *firestore.Client
	Collection string
}

func NewFirestorePersister(client *firestore.Client, collection string) *FirestorePersister {
	col := strings.TrimSpace(collection)
	if col == "" {
		col = DefaultStoreCollection
	}
	return &FirestorePersister{Client: client, Collection: col}
}

func (p *FirestorePersister) Save(ctx context.Context, name string, state cartdom.State) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("FirestorePersister: store name is empty")
	}
	if p.Client == nil {
		return errors.New("FirestorePersister: nil firestore client")
	}

	_, err := p.Client.Collection(p.Collection).Doc(name).Set(ctx, document{
		State:   state,
		Version: schemaVersion,
	})
	return err
}

// Load fetches the blob. A missing document or an undecodable state resets
// to empty rather than erroring; real backend failures are returned.
func (p *FirestorePersister) Load(ctx context.Context, name string) (cartdom.State, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return cartdom.State{}, false, errors.New("FirestorePersister: store name is empty")
	}
	if p.Client == nil {
		return cartdom.State{}, false, errors.New("FirestorePersister: nil firestore client")
	}

	snap, err := p.Client.Collection(p.Collection).Doc(name).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return cartdom.State{}, false, nil
		}
		return cartdom.State{}, false, err
	}

	var d document
	if err := snap.DataTo(&d); err != nil {
		log.Printf("[kv_firestore] WARN: corrupt blob for %q, resetting: %v", name, err)
		return cartdom.State{}, false, nil
	}
	return d.State, true, nil
}
