package domain

type Category struct {
	ID        string `db:"id"`
	SellerID  string `db:"seller_id"`
	Name      string `db:"name"`
	Image     string `db:"image"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
	DeletedAt *int64 `db:"deleted_at"`
}
