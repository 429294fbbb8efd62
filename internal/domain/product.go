package domain

// Price travels as a decimal-in-text value; the database compares it through
// NUMERIC casts.
type Product struct {
	ID          string `db:"id"`
	CategoryID  string `db:"category_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Color       string `db:"color"`
	Image       string `db:"image"`
	Price       string `db:"price"`
	CreatedAt   int64  `db:"created_at"`
	UpdatedAt   int64  `db:"updated_at"`
	DeletedAt   *int64 `db:"deleted_at"`
}

// OrderItem rows are written by the order flow, which lives outside this
// service. They are only read here to block deletion of referenced products.
type OrderItem struct {
	ID        string `db:"id"`
	ProductID string `db:"product_id"`
	OrderID   string `db:"order_id"`
	Quantity  int64  `db:"quantity"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
	DeletedAt *int64 `db:"deleted_at"`
}
