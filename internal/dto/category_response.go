package dto

type ProductSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type CategoryResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Image    string           `json:"image"`
	SellerID string           `json:"sellerId,omitempty"`
	Products []ProductSummary `json:"products,omitempty"`
}
