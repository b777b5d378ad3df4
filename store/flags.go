package store

func (s *Store) SetHasSeenOnboarding(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.HasSeenOnboarding = v
	s.persist()
}

func (s *Store) HasSeenOnboarding() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HasSeenOnboarding
}

func (s *Store) ToggleDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsDarkMode = !s.state.IsDarkMode
	s.persist()
	return s.state.IsDarkMode
}

func (s *Store) IsDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsDarkMode
}
