package persistence

import (
	"errors"
	"testing"

	"github.com/automoto/glitchfire/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems struct {
	data    map[string][]byte
	failing bool
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	if m.failing {
		return nil, errors.New("disk on fire")
	}
	return m.data[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	if m.failing {
		return errors.New("disk on fire")
	}
	m.data[key] = data
	return nil
}

func TestStoreSaveLoadClear(t *testing.T) {
	items := &memItems{data: map[string][]byte{}}
	store := NewStore(items)

	_, ok := store.Load()
	assert.False(t, ok, "nothing saved yet")

	snap := systems.Snapshot{
		Score:          4200,
		PlayerHealth:   55,
		MaxHealth:      120,
		CurrentRound:   6,
		BulletDamage:   14,
		MoveSpeed:      5.5,
		ShieldUnlocked: true,
		ShieldLastUsed: 9000,
		PiercingLevel:  2,
		SavedAt:        12000,
	}
	require.True(t, store.Save(snap))
	assert.Contains(t, string(items.data[snapshotKey]), `"shieldLastUsed":9000`)

	loaded, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, snap, loaded)

	require.True(t, store.Clear())
	_, ok = store.Load()
	assert.False(t, ok)
}

func TestStoreFailuresReportFalse(t *testing.T) {
	items := &memItems{data: map[string][]byte{}, failing: true}
	store := NewStore(items)

	assert.False(t, store.Save(systems.Snapshot{Score: 1}))
	_, ok := store.Load()
	assert.False(t, ok)
	assert.False(t, store.Clear())
}

func TestStoreRejectsCorruptData(t *testing.T) {
	items := &memItems{data: map[string][]byte{snapshotKey: []byte("{not json")}}
	_, ok := NewStore(items).Load()
	assert.False(t, ok)
}

func TestStoreWithoutBackend(t *testing.T) {
	store := &Store{}
	assert.False(t, store.Save(systems.Snapshot{}))
	_, ok := store.Load()
	assert.False(t, ok)
	assert.False(t, store.Clear())
}
