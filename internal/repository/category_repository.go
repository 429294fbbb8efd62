package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kamronbek003/sellerProject/internal/domain"
	"github.com/kamronbek003/sellerProject/pkg/dto"
	"github.com/kamronbek003/sellerProject/pkg/errs"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Sortable fields are resolved through a fixed column map; anything else
// falls back to name.
var categorySortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
}

type CategoryRepository interface {
	AddCategory(ctx context.Context, data domain.Category) (err error)
	GetCategoryByID(ctx context.Context, id string, sellerID string) (res domain.Category, err error)
	GetCategoryByName(ctx context.Context, name string, sellerID string) (res domain.Category, err error)
	GetCategories(ctx context.Context, sellerID string, filter dto.Filter) (data []domain.Category, err error)
	CountCategories(ctx context.Context, sellerID string, filter dto.Filter) (count int64, err error)
	GetProductsByCategoryIDs(ctx context.Context, categoryIDs []string) (data []domain.Product, err error)
	CountProductsByCategoryID(ctx context.Context, categoryID string) (count int64, err error)
	UpdateCategory(ctx context.Context, data domain.Category) (err error)
	DeleteCategory(ctx context.Context, id string) (err error)
}

type CategoryRepositoryImpl struct {
	db *sqlx.DB
}

func CreateCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

// AddCategory maps a violation of the (seller_id, name) unique index to the
// duplicate-name conflict, covering the race the pre-check cannot.
func (r *CategoryRepositoryImpl) AddCategory(ctx context.Context, data domain.Category) (err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	_, err = r.db.NamedExecContext(ctx, `INSERT INTO categories(id, seller_id, name, image, created_at, updated_at)
		VALUES (:id, :seller_id, :name, :image, :created_at, :updated_at)`, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCategory").Msg("")
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return errs.ErrCategoryNameAlreadyUsed
		}
		return errs.ErrInternalServer
	}

	return nil
}

// GetCategoryByID carries the ownership predicate inside the lookup: a
// category belonging to another seller scans as no rows.
func (r *CategoryRepositoryImpl) GetCategoryByID(ctx context.Context, id string, sellerID string) (res domain.Category, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM categories WHERE id = $1 AND seller_id = $2 AND deleted_at IS NULL", id, sellerID)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetCategoryByID").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *CategoryRepositoryImpl) GetCategoryByName(ctx context.Context, name string, sellerID string) (res domain.Category, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM categories WHERE name = $1 AND seller_id = $2 AND deleted_at IS NULL", name, sellerID)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetCategoryByName").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func categoryFilterClause(sellerID string, filter dto.Filter) (string, map[string]interface{}) {
	clause := " WHERE seller_id = :seller_id AND deleted_at IS NULL"
	args := map[string]interface{}{
		"seller_id": sellerID,
	}

	if filter.Name != "" {
		clause += " AND name ILIKE :name"
		args["name"] = "%" + filter.Name + "%"
	}

	return clause, args
}

func (r *CategoryRepositoryImpl) GetCategories(ctx context.Context, sellerID string, filter dto.Filter) (data []domain.Category, err error) {
	clause, args := categoryFilterClause(sellerID, filter)

	column, ok := categorySortColumns[filter.SortBy]
	if !ok {
		column = categorySortColumns[dto.DefaultSortBy]
	}
	direction := "ASC"
	if filter.SortOrder == dto.SortOrderDesc {
		direction = "DESC"
	}

	query := "SELECT * FROM categories" + clause + fmt.Sprintf(" ORDER BY %s %s", column, direction)
	query += " LIMIT :limit OFFSET :offset"
	args["limit"] = filter.Limit
	args["offset"] = filter.Offset()

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCategories").Msg("")
		return nil, errs.ErrInternalServer
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCategories").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *CategoryRepositoryImpl) CountCategories(ctx context.Context, sellerID string, filter dto.Filter) (count int64, err error) {
	clause, args := categoryFilterClause(sellerID, filter)

	nstmt, err := r.db.PrepareNamedContext(ctx, "SELECT COUNT(id) FROM categories"+clause)
	if err != nil {
		log.Error().Err(err).Str("component", "CountCategories").Msg("")
		return 0, errs.ErrInternalServer
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &count, args)
	if err != nil {
		log.Error().Err(err).Str("component", "CountCategories").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *CategoryRepositoryImpl) GetProductsByCategoryIDs(ctx context.Context, categoryIDs []string) (data []domain.Product, err error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}

	query, inArgs, err := sqlx.In("SELECT * FROM products WHERE category_id IN (?) AND deleted_at IS NULL ORDER BY name ASC", categoryIDs)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsByCategoryIDs").Msg("")
		return nil, errs.ErrInternalServer
	}

	query = r.db.Rebind(query)
	err = r.db.SelectContext(ctx, &data, query, inArgs...)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsByCategoryIDs").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *CategoryRepositoryImpl) CountProductsByCategoryID(ctx context.Context, categoryID string) (count int64, err error) {
	err = r.db.GetContext(ctx, &count, "SELECT COUNT(id) FROM products WHERE category_id = $1 AND deleted_at IS NULL", categoryID)
	if err != nil {
		log.Error().Err(err).Str("component", "CountProductsByCategoryID").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *CategoryRepositoryImpl) UpdateCategory(ctx context.Context, data domain.Category) (err error) {
	data.UpdatedAt = time.Now().UnixMilli()

	_, err = r.db.NamedExecContext(ctx, "UPDATE categories SET name = :name, image = :image, updated_at = :updated_at WHERE id = :id AND deleted_at IS NULL", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCategory").Msg("")
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return errs.ErrCategoryNameAlreadyUsed
		}
		return errs.ErrInternalServer
	}

	return nil
}

func (r *CategoryRepositoryImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE categories SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL", time.Now().UnixMilli(), id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteCategory").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}
