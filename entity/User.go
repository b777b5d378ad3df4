package entity

// User is nil in AppState when nobody is logged in.
type User struct {
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Addresses []Address `json:"addresses"`
}
