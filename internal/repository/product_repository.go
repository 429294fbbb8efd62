package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kamronbek003/sellerProject/internal/domain"
	internaldto "github.com/kamronbek003/sellerProject/internal/dto"
	pkgdto "github.com/kamronbek003/sellerProject/pkg/dto"
	"github.com/kamronbek003/sellerProject/pkg/errs"
	"github.com/rs/zerolog/log"
)

var productSortColumns = map[string]string{
	"name":      "p.name",
	"color":     "p.color",
	"price":     "CAST(p.price AS NUMERIC)",
	"createdAt": "p.created_at",
}

// ProductRow is a product joined with its owning category.
type ProductRow struct {
	domain.Product
	CategoryName string `db:"category_name"`
	SellerID     string `db:"seller_id"`
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (err error)
	GetProductByID(ctx context.Context, id string, sellerID string) (res ProductRow, err error)
	GetProducts(ctx context.Context, sellerID string, filter internaldto.ProductFilter) (data []ProductRow, err error)
	CountProducts(ctx context.Context, sellerID string, filter internaldto.ProductFilter) (count int64, err error)
	CountOrderItemsByProductID(ctx context.Context, productID string) (count int64, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type ProductRepositoryImpl struct {
	db *sqlx.DB
}

func CreateProductRepository(db *sqlx.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	_, err = r.db.NamedExecContext(ctx, `INSERT INTO products(id, category_id, name, description, color, image, price, created_at, updated_at)
		VALUES (:id, :category_id, :name, :description, :color, :image, :price, :created_at, :updated_at)`, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

const productSelect = `SELECT p.*, c.name AS category_name, c.seller_id AS seller_id
	FROM products p
	JOIN categories c ON c.id = p.category_id`

// GetProductByID scopes ownership inside the join predicate, so another
// seller's product scans as no rows.
func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id string, sellerID string) (res ProductRow, err error) {
	query := productSelect + " WHERE p.id = $1 AND c.seller_id = $2 AND p.deleted_at IS NULL AND c.deleted_at IS NULL"
	row := r.db.QueryRowxContext(ctx, query, id, sellerID)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func productFilterClause(sellerID string, filter internaldto.ProductFilter) (string, map[string]interface{}) {
	clause := " WHERE c.seller_id = :seller_id AND p.deleted_at IS NULL AND c.deleted_at IS NULL"
	args := map[string]interface{}{
		"seller_id": sellerID,
	}

	if filter.Name != "" {
		clause += " AND p.name ILIKE :name"
		args["name"] = "%" + filter.Name + "%"
	}
	if filter.Color != "" {
		clause += " AND p.color ILIKE :color"
		args["color"] = "%" + filter.Color + "%"
	}
	if filter.MinPrice != "" {
		clause += " AND CAST(p.price AS NUMERIC) >= CAST(:min_price AS NUMERIC)"
		args["min_price"] = filter.MinPrice
	}
	if filter.MaxPrice != "" {
		clause += " AND CAST(p.price AS NUMERIC) <= CAST(:max_price AS NUMERIC)"
		args["max_price"] = filter.MaxPrice
	}
	if filter.CategoryID != "" {
		clause += " AND p.category_id = :category_id"
		args["category_id"] = filter.CategoryID
	}

	return clause, args
}

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context, sellerID string, filter internaldto.ProductFilter) (data []ProductRow, err error) {
	clause, args := productFilterClause(sellerID, filter)

	column, ok := productSortColumns[filter.SortBy]
	if !ok {
		column = productSortColumns[pkgdto.DefaultSortBy]
	}
	direction := "ASC"
	if filter.SortOrder == pkgdto.SortOrderDesc {
		direction = "DESC"
	}

	query := productSelect + clause + fmt.Sprintf(" ORDER BY %s %s", column, direction)
	query += " LIMIT :limit OFFSET :offset"
	args["limit"] = filter.Limit
	args["offset"] = filter.Offset()

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrInternalServer
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *ProductRepositoryImpl) CountProducts(ctx context.Context, sellerID string, filter internaldto.ProductFilter) (count int64, err error) {
	clause, args := productFilterClause(sellerID, filter)

	nstmt, err := r.db.PrepareNamedContext(ctx, "SELECT COUNT(p.id) FROM products p JOIN categories c ON c.id = p.category_id"+clause)
	if err != nil {
		log.Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, errs.ErrInternalServer
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &count, args)
	if err != nil {
		log.Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) CountOrderItemsByProductID(ctx context.Context, productID string) (count int64, err error) {
	err = r.db.GetContext(ctx, &count, "SELECT COUNT(id) FROM order_items WHERE product_id = $1 AND deleted_at IS NULL", productID)
	if err != nil {
		log.Error().Err(err).Str("component", "CountOrderItemsByProductID").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	data.UpdatedAt = time.Now().UnixMilli()

	_, err = r.db.NamedExecContext(ctx, `UPDATE products SET category_id = :category_id, name = :name, description = :description,
		color = :color, image = :image, price = :price, updated_at = :updated_at WHERE id = :id AND deleted_at IS NULL`, data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE products SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL", time.Now().UnixMilli(), id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}
