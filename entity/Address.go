package entity

type Address struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Address   string `json:"address"`
	IsDefault bool   `json:"isDefault"`
}
