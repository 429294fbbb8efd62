package domain

const SellerStatusActive = "ACTIVE"

type Seller struct {
	ID             string `db:"id"`
	ExternalID     string `db:"external_id"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	Phone          string `db:"phone"`
	NameOfStore    string `db:"name_of_store"`
	DateBirth      string `db:"date_birth"`
	Image          string `db:"image"`
	Logo           string `db:"logo"`
	PaymentTime    string `db:"payment_time"`
	BotToken       string `db:"bot_token"`
	HashedPassword string `db:"hashed_password"`
	IsActive       string `db:"is_active"`
	CreatedAt      int64  `db:"created_at"`
	UpdatedAt      int64  `db:"updated_at"`
	DeletedAt      *int64 `db:"deleted_at"`
}
