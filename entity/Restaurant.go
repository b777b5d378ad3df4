package entity

type Restaurant struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NameMM        string `json:"nameMM"`
	Description   string `json:"description"`
	DescriptionMM string `json:"descriptionMM"`
	Image         string `json:"image"`
	CoverImage    string `json:"coverImage"`

	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"reviewCount"`
	DeliveryTime string  `json:"deliveryTime"`
	DeliveryFee  int64   `json:"deliveryFee"`

	Category   string   `json:"category"`
	Categories []string `json:"categories"`
	IsOpen     bool     `json:"isOpen"`

	Menu []MenuItem `json:"menu"`
}
