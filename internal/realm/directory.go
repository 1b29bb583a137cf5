package realm

import (
	"errors"
	"sync"

	"github.com/udisondev/muconnect/internal/event"
)

var (
	// ErrDuplicateID is returned by Add when the realm id is already registered.
	ErrDuplicateID = errors.New("duplicate realm id")

	// ErrInexistentID is returned when no realm with the id is registered.
	ErrInexistentID = errors.New("inexistent realm id")
)

// Directory is the shared registry of live realm servers.
// Readers get value copies, so a concurrent update never exposes a torn entry.
// Event subscribers run under the bus lock and must not call back into the
// directory.
type Directory struct {
	mu     sync.RWMutex
	realms map[ID]Realm

	onRegister   *event.Bus[Realm]
	onDeregister *event.Bus[Realm]
	onUpdate     *event.Bus[Realm]
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		realms:       make(map[ID]Realm),
		onRegister:   event.New[Realm](),
		onDeregister: event.New[Realm](),
		onUpdate:     event.New[Realm](),
	}
}

// OnRegister is dispatched after a realm is added.
func (d *Directory) OnRegister() *event.Bus[Realm] { return d.onRegister }

// OnDeregister is dispatched after a realm is removed.
func (d *Directory) OnDeregister() *event.Bus[Realm] { return d.onDeregister }

// OnUpdate is dispatched after a realm entry is mutated.
func (d *Directory) OnUpdate() *event.Bus[Realm] { return d.onUpdate }

// Add registers a new realm. Fails with ErrDuplicateID if the id is taken.
func (d *Directory) Add(r Realm) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.realms[r.ID]; exists {
		return ErrDuplicateID
	}
	d.realms[r.ID] = r
	d.onRegister.Dispatch(r)
	return nil
}

// Remove deregisters a realm and returns its last state.
func (d *Directory) Remove(id ID) (Realm, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, exists := d.realms[id]
	if !exists {
		return Realm{}, ErrInexistentID
	}
	delete(d.realms, id)
	d.onDeregister.Dispatch(r)
	return r, nil
}

// Update mutates the entry for id under the write lock.
// The mutator must not change the entry's ID.
func (d *Directory) Update(id ID, fn func(*Realm)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, exists := d.realms[id]
	if !exists {
		return ErrInexistentID
	}
	fn(&r)
	r.ID = id
	d.realms[id] = r
	d.onUpdate.Dispatch(r)
	return nil
}

// Get returns a copy of the entry for id.
func (d *Directory) Get(id ID) (Realm, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	r, exists := d.realms[id]
	if !exists {
		return Realm{}, ErrInexistentID
	}
	return r, nil
}

// ForEach invokes fn once per realm over a consistent snapshot.
// Iteration order is unspecified.
func (d *Directory) ForEach(fn func(Realm)) {
	d.mu.RLock()
	snapshot := make([]Realm, 0, len(d.realms))
	for _, r := range d.realms {
		snapshot = append(snapshot, r)
	}
	d.mu.RUnlock()

	for _, r := range snapshot {
		fn(r)
	}
}

// Len returns the number of registered realms.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.realms)
}
