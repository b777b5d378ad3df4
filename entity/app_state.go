package entity

// AppState is everything the app persists: cart, identity, order history and
// the app-level flags. It is serialized as one JSON document (see
// repository.StateRepository); the zero value is the fresh-install state.
type AppState struct {
	Cart              []CartItem `json:"cart"`
	User              *User      `json:"user"`
	Orders            []Order    `json:"orders"`
	HasSeenOnboarding bool       `json:"hasSeenOnboarding"`
	IsDarkMode        bool       `json:"isDarkMode"`
}
