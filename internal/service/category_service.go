package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kamronbek003/sellerProject/internal/domain"
	"github.com/kamronbek003/sellerProject/internal/dto"
	"github.com/kamronbek003/sellerProject/internal/repository"
	pkgdto "github.com/kamronbek003/sellerProject/pkg/dto"
	"github.com/kamronbek003/sellerProject/pkg/errs"
)

type CategoryService interface {
	AddCategory(ctx context.Context, payload dto.CategoryRequest, sellerID string) (respPayload dto.CategoryResponse, err error)
	GetCategories(ctx context.Context, sellerID string, filter pkgdto.Filter) (respPayload pkgdto.PaginationResponse, err error)
	GetCategoryByID(ctx context.Context, id string, sellerID string) (respPayload dto.CategoryResponse, err error)
	UpdateCategory(ctx context.Context, id string, payload dto.UpdateCategoryRequest, sellerID string) (respPayload dto.CategoryResponse, err error)
	DeleteCategory(ctx context.Context, id string, sellerID string) (err error)
}

type CategoryServiceImpl struct {
	repo repository.CategoryRepository
}

func CreateCategoryService(repo repository.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{repo: repo}
}

func (s *CategoryServiceImpl) AddCategory(ctx context.Context, payload dto.CategoryRequest, sellerID string) (respPayload dto.CategoryResponse, err error) {
	existing, err := s.repo.GetCategoryByName(ctx, payload.Name, sellerID)
	if err != nil {
		return respPayload, err
	}
	if existing.ID != "" {
		return respPayload, errs.ErrCategoryNameAlreadyUsed
	}

	categoryEnt := domain.Category{
		ID:       uuid.NewString(),
		SellerID: sellerID,
		Name:     payload.Name,
		Image:    payload.Image,
	}

	if err := s.repo.AddCategory(ctx, categoryEnt); err != nil {
		return respPayload, err
	}

	respPayload = dto.CategoryResponse{
		ID:       categoryEnt.ID,
		Name:     categoryEnt.Name,
		Image:    categoryEnt.Image,
		SellerID: categoryEnt.SellerID,
	}

	return
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context, sellerID string, filter pkgdto.Filter) (respPayload pkgdto.PaginationResponse, err error) {
	filter.Normalize()

	total, err := s.repo.CountCategories(ctx, sellerID, filter)
	if err != nil {
		return respPayload, err
	}

	categories, err := s.repo.GetCategories(ctx, sellerID, filter)
	if err != nil {
		return respPayload, err
	}

	categoryIDs := make([]string, 0, len(categories))
	for _, category := range categories {
		categoryIDs = append(categoryIDs, category.ID)
	}

	products, err := s.repo.GetProductsByCategoryIDs(ctx, categoryIDs)
	if err != nil {
		return respPayload, err
	}

	productsByCategory := make(map[string][]dto.ProductSummary)
	for _, product := range products {
		productsByCategory[product.CategoryID] = append(productsByCategory[product.CategoryID], dto.ProductSummary{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
		})
	}

	records := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		records = append(records, dto.CategoryResponse{
			ID:       category.ID,
			Name:     category.Name,
			Image:    category.Image,
			Products: productsByCategory[category.ID],
		})
	}

	respPayload.Data = records
	respPayload.Meta = pkgdto.CreatePaginationMetadata(total, filter.Page, filter.Limit)

	return
}

func (s *CategoryServiceImpl) GetCategoryByID(ctx context.Context, id string, sellerID string) (respPayload dto.CategoryResponse, err error) {
	category, err := s.repo.GetCategoryByID(ctx, id, sellerID)
	if err != nil {
		return respPayload, err
	}
	if category.ID == "" {
		return respPayload, errs.ErrCategoryNotFound
	}

	products, err := s.repo.GetProductsByCategoryIDs(ctx, []string{category.ID})
	if err != nil {
		return respPayload, err
	}

	summaries := make([]dto.ProductSummary, 0, len(products))
	for _, product := range products {
		summaries = append(summaries, dto.ProductSummary{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
		})
	}

	respPayload = dto.CategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		Image:    category.Image,
		SellerID: category.SellerID,
		Products: summaries,
	}

	return
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, id string, payload dto.UpdateCategoryRequest, sellerID string) (respPayload dto.CategoryResponse, err error) {
	category, err := s.repo.GetCategoryByID(ctx, id, sellerID)
	if err != nil {
		return respPayload, err
	}
	if category.ID == "" {
		return respPayload, errs.ErrCategoryNotFound
	}

	if payload.Name != "" && payload.Name != category.Name {
		existing, err := s.repo.GetCategoryByName(ctx, payload.Name, sellerID)
		if err != nil {
			return respPayload, err
		}
		if existing.ID != "" {
			return respPayload, errs.ErrCategoryNameAlreadyUsed
		}
		category.Name = payload.Name
	}

	if payload.Image != "" {
		category.Image = payload.Image
	}

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return respPayload, err
	}

	respPayload = dto.CategoryResponse{
		ID:    category.ID,
		Name:  category.Name,
		Image: category.Image,
	}

	return
}

func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id string, sellerID string) (err error) {
	category, err := s.repo.GetCategoryByID(ctx, id, sellerID)
	if err != nil {
		return err
	}
	if category.ID == "" {
		return errs.ErrCategoryNotFound
	}

	productCount, err := s.repo.CountProductsByCategoryID(ctx, category.ID)
	if err != nil {
		return err
	}
	if productCount > 0 {
		return errs.ErrCategoryHasProducts
	}

	return s.repo.DeleteCategory(ctx, category.ID)
}
