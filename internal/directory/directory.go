package directory

import (
	"strings"
	"sync"

	"github.com/papecode/nfc-card-demo/internal/identity"
)

// Directory is the preloaded identity set the demo authenticates against.
// Lookups compare emails case-insensitively. A real deployment would replace
// this with a remote identity service behind the same interface.
type Directory struct {
	mu    sync.RWMutex
	users []identity.User
}

// New creates a directory seeded with the given identities.
func New(seed []identity.User) *Directory {
	users := make([]identity.User, len(seed))
	copy(users, seed)
	return &Directory{users: users}
}

// FindByEmail returns the identity matching the email, compared
// case-insensitively.
func (d *Directory) FindByEmail(email string) (identity.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return identity.User{}, false
}

// Exists reports whether an identity with the given email is already
// registered, compared case-insensitively.
func (d *Directory) Exists(email string) bool {
	_, ok := d.FindByEmail(email)
	return ok
}

// Add registers a new identity. Uniqueness is the caller's responsibility.
func (d *Directory) Add(u identity.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users = append(d.users, u)
}

// Get returns the identity with the given id.
func (d *Directory) Get(id string) (identity.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return identity.User{}, false
}

// List returns a copy of all identities in seed order.
func (d *Directory) List() []identity.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users := make([]identity.User, len(d.users))
	copy(users, d.users)
	return users
}
