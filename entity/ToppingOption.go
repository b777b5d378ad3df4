package entity

type ToppingOption struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameMM string `json:"nameMM"`
	Price  int64  `json:"price"`
}
