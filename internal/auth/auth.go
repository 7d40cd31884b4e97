package auth

import (
	"fmt"
	"sync"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
)

// Identity is the external auth/identity collaborator. The engine trusts its
// answers as already-verified inputs; session issuance and login live
// elsewhere.
type Identity interface {
	GetUser(userID string) (model.User, error)
	IsApprovedBidder(userID string) bool
	IsApprovedSeller(userID string) bool
	IsAdmin(userID string) bool
}

// Directory additionally allows admins to flip approval and role flags.
type Directory interface {
	Identity
	UpdateUser(userID string, fn func(*model.User)) (model.User, error)
}

// MemoryDirectory is a concurrency-safe in-memory Directory implementation.
type MemoryDirectory struct {
	mu    sync.RWMutex
	users map[string]model.User
}

// NewMemoryDirectory creates a directory seeded with the given users.
func NewMemoryDirectory(users ...model.User) *MemoryDirectory {
	d := &MemoryDirectory{users: make(map[string]model.User, len(users))}
	for _, u := range users {
		d.users[u.UserID] = u
	}
	return d
}

// AddUser registers a user. Intended for wiring and tests.
func (d *MemoryDirectory) AddUser(u model.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[u.UserID] = u
}

// GetUser returns the user by id.
func (d *MemoryDirectory) GetUser(userID string) (model.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrNotAuthorized)
	}
	return u, nil
}

// IsApprovedBidder reports whether the user may place bids.
func (d *MemoryDirectory) IsApprovedBidder(userID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.users[userID].ApprovedBidder
}

// IsApprovedSeller reports whether the user may run auctions and streams.
func (d *MemoryDirectory) IsApprovedSeller(userID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.users[userID].ApprovedSeller
}

// IsAdmin reports whether the user holds the admin role.
func (d *MemoryDirectory) IsAdmin(userID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.users[userID].IsAdmin
}

// UpdateUser applies fn to the user record under the directory lock.
func (d *MemoryDirectory) UpdateUser(userID string, fn func(*model.User)) (model.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("update user %s: %w", userID, auctionerrors.ErrNotAuthorized)
	}
	fn(&u)
	d.users[userID] = u
	return u, nil
}
