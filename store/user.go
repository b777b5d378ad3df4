package store

import "github.com/Krypton102019/dk-deli/entity"

// SetUser replaces the user wholesale; nil means logged out. Cart and order
// history are independent of identity and are left untouched.
func (s *Store) SetUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil {
		s.state.User = nil
	} else {
		cp := *u
		cp.Addresses = append([]entity.Address(nil), u.Addresses...)
		s.state.User = &cp
	}
	s.persist()
}

func (s *Store) User() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return nil
	}
	cp := *s.state.User
	cp.Addresses = append([]entity.Address(nil), s.state.User.Addresses...)
	return &cp
}

// AddAddress appends to the user's list; no-op when nobody is logged in.
func (s *Store) AddAddress(a entity.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return
	}
	s.state.User.Addresses = append(s.state.User.Addresses, a)
	s.persist()
}

func (s *Store) RemoveAddress(addressID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return
	}
	kept := s.state.User.Addresses[:0]
	for _, a := range s.state.User.Addresses {
		if a.ID != addressID {
			kept = append(kept, a)
		}
	}
	s.state.User.Addresses = kept
	s.persist()
}

// SetDefaultAddress marks the matching address default and clears the flag
// everywhere else. This is the one operation that maintains the
// at-most-one-default invariant.
func (s *Store) SetDefaultAddress(addressID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return
	}
	for i := range s.state.User.Addresses {
		s.state.User.Addresses[i].IsDefault = s.state.User.Addresses[i].ID == addressID
	}
	s.persist()
}
