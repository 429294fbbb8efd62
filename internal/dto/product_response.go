package dto

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Color       string      `json:"color"`
	Image       string      `json:"image"`
	Price       string      `json:"price"`
	Category    CategoryRef `json:"category"`
}
