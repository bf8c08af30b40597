package cart

import "context"

// Storage persists a session's cart items across restarts. Implementations
// must treat an unknown session as an empty cart, not an error.
type Storage interface {
	Load(ctx context.Context, sessionID string) ([]Item, error)
	Save(ctx context.Context, sessionID string, items []Item) error
	Delete(ctx context.Context, sessionID string) error
}

// Store runs cart mutations against persisted session state: load, apply,
// save. Carts are scoped per session (client device), not per user.
type Store struct {
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Get restores the session's cart.
func (s *Store) Get(ctx context.Context, sessionID string) (*Cart, error) {
	items, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return New(items...), nil
}

// AddItem merges the item into the session's cart and persists the result.
func (s *Store) AddItem(ctx context.Context, sessionID string, it Item) (*Cart, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) { c.AddItem(it) })
}

// UpdateQuantity sets the entry's quantity; zero or less removes it.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID, menuID string, quantity int) (*Cart, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) { c.UpdateQuantity(menuID, quantity) })
}

// RemoveItem drops the entry for menuID, if present.
func (s *Store) RemoveItem(ctx context.Context, sessionID, menuID string) (*Cart, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) { c.RemoveItem(menuID) })
}

// Clear empties the session's cart unconditionally.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.storage.Delete(ctx, sessionID)
}

func (s *Store) mutate(ctx context.Context, sessionID string, fn func(*Cart)) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fn(c)
	if err := s.storage.Save(ctx, sessionID, c.items); err != nil {
		return nil, err
	}
	return c, nil
}
