package entity

type MenuItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NameMM        string `json:"nameMM"`
	Description   string `json:"description"`
	DescriptionMM string `json:"descriptionMM"`
	Price         int64  `json:"price"`
	Image         string `json:"image"`
	Category      string `json:"category"`

	IsPopular bool `json:"isPopular,omitempty"`
	IsSpicy   bool `json:"isSpicy,omitempty"`

	// options the customer can add on top of the base price
	Toppings []ToppingOption `json:"toppings,omitempty"`
}
