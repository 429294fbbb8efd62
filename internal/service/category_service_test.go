package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/kamronbek003/sellerProject/internal/domain"
	"github.com/kamronbek003/sellerProject/internal/dto"
	pkgdto "github.com/kamronbek003/sellerProject/pkg/dto"
	"github.com/kamronbek003/sellerProject/pkg/errs"
	"github.com/stretchr/testify/suite"
)

type fakeCategoryRepository struct {
	categories map[string]domain.Category
	products   map[string]domain.Product
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{
		categories: make(map[string]domain.Category),
		products:   make(map[string]domain.Product),
	}
}

func (r *fakeCategoryRepository) AddCategory(ctx context.Context, data domain.Category) error {
	for _, category := range r.categories {
		if category.SellerID == data.SellerID && category.Name == data.Name {
			return errs.ErrCategoryNameAlreadyUsed
		}
	}
	r.categories[data.ID] = data
	return nil
}

func (r *fakeCategoryRepository) GetCategoryByID(ctx context.Context, id string, sellerID string) (domain.Category, error) {
	category := r.categories[id]
	if category.SellerID != sellerID {
		return domain.Category{}, nil
	}
	return category, nil
}

func (r *fakeCategoryRepository) GetCategoryByName(ctx context.Context, name string, sellerID string) (domain.Category, error) {
	for _, category := range r.categories {
		if category.SellerID == sellerID && category.Name == name {
			return category, nil
		}
	}
	return domain.Category{}, nil
}

func (r *fakeCategoryRepository) matchCategories(sellerID string, filter pkgdto.Filter) []domain.Category {
	matched := make([]domain.Category, 0)
	for _, category := range r.categories {
		if category.SellerID != sellerID {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(category.Name), strings.ToLower(filter.Name)) {
			continue
		}
		matched = append(matched, category)
	}
	sort.Slice(matched, func(i, j int) bool {
		if filter.SortOrder == pkgdto.SortOrderDesc {
			return matched[i].Name > matched[j].Name
		}
		return matched[i].Name < matched[j].Name
	})
	return matched
}

func (r *fakeCategoryRepository) GetCategories(ctx context.Context, sellerID string, filter pkgdto.Filter) ([]domain.Category, error) {
	matched := r.matchCategories(sellerID, filter)
	offset := filter.Offset()
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (r *fakeCategoryRepository) CountCategories(ctx context.Context, sellerID string, filter pkgdto.Filter) (int64, error) {
	return int64(len(r.matchCategories(sellerID, filter))), nil
}

func (r *fakeCategoryRepository) GetProductsByCategoryIDs(ctx context.Context, categoryIDs []string) ([]domain.Product, error) {
	var data []domain.Product
	for _, id := range categoryIDs {
		for _, product := range r.products {
			if product.CategoryID == id {
				data = append(data, product)
			}
		}
	}
	return data, nil
}

func (r *fakeCategoryRepository) CountProductsByCategoryID(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	for _, product := range r.products {
		if product.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *fakeCategoryRepository) UpdateCategory(ctx context.Context, data domain.Category) error {
	r.categories[data.ID] = data
	return nil
}

func (r *fakeCategoryRepository) DeleteCategory(ctx context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

type CategoryServiceTestSuite struct {
	suite.Suite
	repo    *fakeCategoryRepository
	service CategoryService
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.repo = newFakeCategoryRepository()
	s.service = CreateCategoryService(s.repo)
}

func (s *CategoryServiceTestSuite) Test_AddCategory() {
	resp, err := s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: "Ichimliklar", Image: "https://example.com/drinks.jpg"}, "seller-1")

	s.Require().NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal("Ichimliklar", resp.Name)
	s.Equal("seller-1", resp.SellerID)
}

func (s *CategoryServiceTestSuite) Test_AddCategory_DuplicateNameSameSeller() {
	_, err := s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: "Ichimliklar"}, "seller-1")
	s.Require().NoError(err)

	_, err = s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: "Ichimliklar"}, "seller-1")
	s.Equal(errs.ErrCategoryNameAlreadyUsed, err)
}

func (s *CategoryServiceTestSuite) Test_AddCategory_SameNameDifferentSeller() {
	_, err := s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: "Ichimliklar"}, "seller-1")
	s.Require().NoError(err)

	_, err = s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: "Ichimliklar"}, "seller-2")
	s.NoError(err)
}

func (s *CategoryServiceTestSuite) Test_GetCategories_Pagination() {
	for i := 0; i < 25; i++ {
		_, err := s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: fmt.Sprintf("Bo'lim %02d", i)}, "seller-1")
		s.Require().NoError(err)
	}

	seen := 0
	for page := 1; page <= 3; page++ {
		resp, err := s.service.GetCategories(context.Background(), "seller-1", pkgdto.Filter{Page: page})
		s.Require().NoError(err)

		s.Equal(int64(25), resp.Meta.Total)
		s.Equal(page, resp.Meta.Page)
		s.Equal(10, resp.Meta.Limit)
		s.Equal(int64(3), resp.Meta.TotalPages)

		records, ok := resp.Data.([]dto.CategoryResponse)
		s.Require().True(ok)
		seen += len(records)
	}
	s.Equal(25, seen)
}

func (s *CategoryServiceTestSuite) Test_GetCategories_NameFilterAndOrder() {
	for _, name := range []string{"Shirinliklar", "Ichimliklar", "Issiq ichimliklar"} {
		_, err := s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: name}, "seller-1")
		s.Require().NoError(err)
	}

	resp, err := s.service.GetCategories(context.Background(), "seller-1", pkgdto.Filter{Name: "ichimlik", SortOrder: "desc"})
	s.Require().NoError(err)

	records, ok := resp.Data.([]dto.CategoryResponse)
	s.Require().True(ok)
	s.Require().Len(records, 2)
	s.Equal("Issiq ichimliklar", records[0].Name)
	s.Equal("Ichimliklar", records[1].Name)
	s.Equal(int64(2), resp.Meta.Total)
}

func (s *CategoryServiceTestSuite) Test_GetCategories_EmptyPageIsList() {
	resp, err := s.service.GetCategories(context.Background(), "seller-1", pkgdto.Filter{})
	s.Require().NoError(err)

	records, ok := resp.Data.([]dto.CategoryResponse)
	s.Require().True(ok)
	s.NotNil(records)
	s.Empty(records)
	s.Equal(int64(0), resp.Meta.TotalPages)
}

func (s *CategoryServiceTestSuite) Test_GetCategories_IncludesProducts() {
	resp, err := s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: "Ichimliklar"}, "seller-1")
	s.Require().NoError(err)

	s.repo.products["p-1"] = domain.Product{ID: "p-1", CategoryID: resp.ID, Name: "Kola", Price: "12000"}

	listResp, err := s.service.GetCategories(context.Background(), "seller-1", pkgdto.Filter{})
	s.Require().NoError(err)

	records, ok := listResp.Data.([]dto.CategoryResponse)
	s.Require().True(ok)
	s.Require().Len(records, 1)
	s.Require().Len(records[0].Products, 1)
	s.Equal("Kola", records[0].Products[0].Name)
	s.Equal("12000", records[0].Products[0].Price)
}

func (s *CategoryServiceTestSuite) Test_GetCategoryByID_NotFoundAndForeign() {
	resp, err := s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: "Ichimliklar"}, "seller-1")
	s.Require().NoError(err)

	_, err = s.service.GetCategoryByID(context.Background(), "missing", "seller-1")
	s.Equal(errs.ErrCategoryNotFound, err)

	// Another seller's category answers exactly like a missing one.
	_, err = s.service.GetCategoryByID(context.Background(), resp.ID, "seller-2")
	s.Equal(errs.ErrCategoryNotFound, err)

	found, err := s.service.GetCategoryByID(context.Background(), resp.ID, "seller-1")
	s.Require().NoError(err)
	s.Equal("Ichimliklar", found.Name)
}

func (s *CategoryServiceTestSuite) Test_UpdateCategory() {
	resp, err := s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: "Ichimliklar", Image: "old.jpg"}, "seller-1")
	s.Require().NoError(err)

	updated, err := s.service.UpdateCategory(context.Background(), resp.ID, dto.UpdateCategoryRequest{Name: "Sovuq ichimliklar"}, "seller-1")
	s.Require().NoError(err)
	s.Equal("Sovuq ichimliklar", updated.Name)
	s.Equal("old.jpg", updated.Image)
}

func (s *CategoryServiceTestSuite) Test_UpdateCategory_RenameCollision() {
	_, err := s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: "Ichimliklar"}, "seller-1")
	s.Require().NoError(err)
	resp, err := s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: "Shirinliklar"}, "seller-1")
	s.Require().NoError(err)

	_, err = s.service.UpdateCategory(context.Background(), resp.ID, dto.UpdateCategoryRequest{Name: "Ichimliklar"}, "seller-1")
	s.Equal(errs.ErrCategoryNameAlreadyUsed, err)

	// Keeping the current name is not a collision.
	_, err = s.service.UpdateCategory(context.Background(), resp.ID, dto.UpdateCategoryRequest{Name: "Shirinliklar", Image: "new.jpg"}, "seller-1")
	s.NoError(err)
}

func (s *CategoryServiceTestSuite) Test_UpdateCategory_Foreign() {
	resp, err := s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: "Ichimliklar"}, "seller-1")
	s.Require().NoError(err)

	_, err = s.service.UpdateCategory(context.Background(), resp.ID, dto.UpdateCategoryRequest{Name: "Yangi"}, "seller-2")
	s.Equal(errs.ErrCategoryNotFound, err)
}

func (s *CategoryServiceTestSuite) Test_DeleteCategory_BlockedByProducts() {
	resp, err := s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: "Ichimliklar"}, "seller-1")
	s.Require().NoError(err)

	s.repo.products["p-1"] = domain.Product{ID: "p-1", CategoryID: resp.ID, Name: "Kola", Price: "12000"}

	err = s.service.DeleteCategory(context.Background(), resp.ID, "seller-1")
	s.Equal(errs.ErrCategoryHasProducts, err)

	delete(s.repo.products, "p-1")

	err = s.service.DeleteCategory(context.Background(), resp.ID, "seller-1")
	s.Require().NoError(err)

	_, err = s.service.GetCategoryByID(context.Background(), resp.ID, "seller-1")
	s.Equal(errs.ErrCategoryNotFound, err)
}

func (s *CategoryServiceTestSuite) Test_DeleteCategory_Foreign() {
	resp, err := s.service.AddCategory(context.Background(), dto.CategoryRequest{Name: "Ichimliklar"}, "seller-1")
	s.Require().NoError(err)

	err = s.service.DeleteCategory(context.Background(), resp.ID, "seller-2")
	s.Equal(errs.ErrCategoryNotFound, err)

	_, err = s.service.GetCategoryByID(context.Background(), resp.ID, "seller-1")
	s.NoError(err)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
