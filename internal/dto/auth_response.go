package dto

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

type SellerResponse struct {
	ID          string `json:"id"`
	ExternalID  string `json:"externalId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	NameOfStore string `json:"nameOfStore"`
	DateBirth   string `json:"dateBirth"`
	Image       string `json:"image"`
	Logo        string `json:"logo"`
}
