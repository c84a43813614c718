// internal/domain/cart/store_test.go
package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPersister captures every Save so tests can assert the
// full-overwrite contract.
type recordingPersister struct {
	saves   []State
	initial *State
	loadErr error
}

func (p *recordingPersister) Save(_ context.Context, _ string, state State) error {
	p.saves = append(p.saves, state)
	return nil
}

func (p *recordingPersister) Load(_ context.Context, _ string) (State, bool, error) {
	if p.loadErr != nil {
		return State{}, false, p.loadErr
	}
	if p.initial == nil {
		return State{}, false, nil
	}
	return *p.initial, true, nil
}

func tee(q int) Item {
	return Item{
		ProductID: "tee-01",
		Name:      "Campus Tee",
		Price:     24.5,
		Quantity:  q,
		Image:     "https://cdn.example/tee.png",
		Size:      "M",
		Color:     "#1f2a44",
	}
}

func TestAddItemMergesByIdentityKey(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, DefaultStoreName, nil)

	s.AddItem(ctx, tee(2))
	s.AddItem(ctx, tee(3))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItemDifferentKeyAppends(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, DefaultStoreName, nil)

	s.AddItem(ctx, tee(1))

	other := tee(1)
	other.Size = "L"
	s.AddItem(ctx, other)

	colored := tee(1)
	colored.Color = "#ffffff"
	s.AddItem(ctx, colored)

	assert.Len(t, s.Items(), 3)
	assert.Equal(t, 3, s.ItemCount())
}

func TestItemCountTracksAllMutations(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, DefaultStoreName, nil)

	assert.Equal(t, 0, s.ItemCount())

	s.AddItem(ctx, tee(2))
	hoodie := Item{ProductID: "hoodie-07", Price: 49, Quantity: 1, Size: "S", Color: "#000000"}
	s.AddItem(ctx, hoodie)
	assert.Equal(t, 3, s.ItemCount())

	s.UpdateQuantity(ctx, "tee-01", "M", "#1f2a44", 5)
	assert.Equal(t, 6, s.ItemCount())

	s.RemoveItem(ctx, "hoodie-07", "S", "#000000")
	assert.Equal(t, 5, s.ItemCount())

	s.RemoveItem(ctx, "tee-01", "M", "#1f2a44")
	assert.Equal(t, 0, s.ItemCount())
}

func TestTotalIsPriceTimesQuantity(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, DefaultStoreName, nil)

	s.AddItem(ctx, tee(2)) // 49.0
	hoodie := Item{ProductID: "hoodie-07", Price: 49, Quantity: 1, Size: "S", Color: "#000000"}
	s.AddItem(ctx, hoodie)

	assert.InDelta(t, 2*24.5+49, s.Total(), 1e-9)

	s.Clear(ctx)
	assert.Zero(t, s.Total())
	assert.Zero(t, s.ItemCount())
}

func TestRemoveAbsentKeyIsNoop(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, DefaultStoreName, nil)

	s.AddItem(ctx, tee(1))
	s.RemoveItem(ctx, "tee-01", "XL", "#1f2a44")

	assert.Len(t, s.Items(), 1)
}

func TestUpdateQuantitySetsDirectlyNotAdditively(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, DefaultStoreName, nil)

	s.AddItem(ctx, tee(4))
	s.UpdateQuantity(ctx, "tee-01", "M", "#1f2a44", 2)

	assert.Equal(t, 2, s.Items()[0].Quantity)

	// absent key: no-op, nothing created
	s.UpdateQuantity(ctx, "ghost", "M", "#1f2a44", 9)
	assert.Len(t, s.Items(), 1)
}

// Pins the documented gap: non-positive quantities are accepted as-is.
func TestUpdateQuantityAcceptsNonPositiveValues(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, DefaultStoreName, nil)

	s.AddItem(ctx, tee(3))
	s.UpdateQuantity(ctx, "tee-01", "M", "#1f2a44", 0)
	assert.Equal(t, 0, s.Items()[0].Quantity)
	assert.Equal(t, 0, s.ItemCount())

	s.UpdateQuantity(ctx, "tee-01", "M", "#1f2a44", -2)
	assert.Equal(t, -2, s.Items()[0].Quantity)
	assert.Equal(t, -2, s.ItemCount())
}

func TestEveryMutationPersistsFullState(t *testing.T) {
	ctx := context.Background()
	p := &recordingPersister{}
	s := NewStore(ctx, DefaultStoreName, p)

	s.AddItem(ctx, tee(1))
	s.AddItem(ctx, tee(2))
	s.UpdateQuantity(ctx, "tee-01", "M", "#1f2a44", 7)
	s.RemoveItem(ctx, "tee-01", "M", "#1f2a44")

	require.Len(t, p.saves, 4)
	// each save is the complete collection, not a delta
	assert.Equal(t, 1, p.saves[0].Items[0].Quantity)
	assert.Equal(t, 3, p.saves[1].Items[0].Quantity)
	assert.Equal(t, 7, p.saves[2].Items[0].Quantity)
	assert.Empty(t, p.saves[3].Items)
}

func TestNewStoreRestoresPersistedState(t *testing.T) {
	ctx := context.Background()
	p := &recordingPersister{initial: &State{Items: []Item{tee(4)}}}

	s := NewStore(ctx, DefaultStoreName, p)

	assert.Equal(t, 4, s.ItemCount())
	assert.InDelta(t, 4*24.5, s.Total(), 1e-9)
}

func TestNewStoreStartsEmptyOnLoadFailure(t *testing.T) {
	ctx := context.Background()
	p := &recordingPersister{loadErr: assert.AnError}

	s := NewStore(ctx, DefaultStoreName, p)

	assert.Zero(t, s.ItemCount())
}
