package store

import (
	"log"
	"sync"

	"github.com/Krypton102019/dk-deli/entity"
)

// Persister is the storage port. Load runs once at construction, Save after
// every mutation.
type Persister interface {
	Load() (entity.AppState, error)
	Save(entity.AppState) error
}

// Store owns the whole app state (cart, user, orders, flags). Every
// operation takes the lock, mutates in memory, then writes through to the
// Persister. Persistence is best-effort: a failed Save is logged and the
// in-memory mutation stands.
type Store struct {
	mu    sync.Mutex
	state entity.AppState
	repo  Persister
}

func New(repo Persister) *Store {
	s := &Store{repo: repo}
	if repo != nil {
		st, err := repo.Load()
		if err != nil {
			log.Printf("state load failed, starting fresh: %v", err)
			st = entity.AppState{}
		}
		s.state = st
	}
	return s
}

// persist must be called with the lock held.
func (s *Store) persist() {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(s.state); err != nil {
		log.Printf("state save failed: %v", err)
	}
}
