package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/kamronbek003/sellerProject/internal/domain"
	"github.com/kamronbek003/sellerProject/internal/dto"
	"github.com/kamronbek003/sellerProject/internal/repository"
	pkgdto "github.com/kamronbek003/sellerProject/pkg/dto"
	"github.com/kamronbek003/sellerProject/pkg/errs"
	"github.com/rs/zerolog/log"
)

// EventPublisher fans catalog changes out to downstream consumers. Publish
// failures are an observability concern, never an API failure.
type EventPublisher interface {
	Publish(msg []byte) error
}

type ProductService interface {
	AddProduct(ctx context.Context, payload dto.ProductRequest, sellerID string) (respPayload dto.ProductResponse, err error)
	GetProducts(ctx context.Context, sellerID string, filter dto.ProductFilter) (respPayload pkgdto.PaginationResponse, err error)
	GetProductByID(ctx context.Context, id string, sellerID string) (respPayload dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, id string, payload dto.UpdateProductRequest, sellerID string) (respPayload dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id string, sellerID string) (err error)
}

type ProductServiceImpl struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	publisher    EventPublisher
}

func CreateProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{repo: repo, categoryRepo: categoryRepo, publisher: publisher}
}

// AddProduct resolves the target category scoped to the caller, so a category
// owned by another seller is indistinguishable from a missing one.
func (s *ProductServiceImpl) AddProduct(ctx context.Context, payload dto.ProductRequest, sellerID string) (respPayload dto.ProductResponse, err error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, payload.CategoryID, sellerID)
	if err != nil {
		return respPayload, err
	}
	if category.ID == "" {
		return respPayload, errs.ErrCategoryNotFound
	}

	productEnt := domain.Product{
		ID:          uuid.NewString(),
		CategoryID:  category.ID,
		Name:        payload.Name,
		Description: payload.Description,
		Color:       payload.Color,
		Image:       payload.Image,
		Price:       payload.Price,
	}

	if err := s.repo.AddProduct(ctx, productEnt); err != nil {
		return respPayload, err
	}

	respPayload = dto.ProductResponse{
		ID:          productEnt.ID,
		Name:        productEnt.Name,
		Description: productEnt.Description,
		Color:       productEnt.Color,
		Image:       productEnt.Image,
		Price:       productEnt.Price,
		Category: dto.CategoryRef{
			ID:   category.ID,
			Name: category.Name,
		},
	}

	s.publishEvent(dto.EventProductCreated, respPayload)

	return
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, sellerID string, filter dto.ProductFilter) (respPayload pkgdto.PaginationResponse, err error) {
	filter.Normalize()

	total, err := s.repo.CountProducts(ctx, sellerID, filter)
	if err != nil {
		return respPayload, err
	}

	rows, err := s.repo.GetProducts(ctx, sellerID, filter)
	if err != nil {
		return respPayload, err
	}

	records := make([]dto.ProductResponse, 0, len(rows))
	for _, row := range rows {
		records = append(records, productRowToResponse(row))
	}

	respPayload.Data = records
	respPayload.Meta = pkgdto.CreatePaginationMetadata(total, filter.Page, filter.Limit)

	return
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string, sellerID string) (respPayload dto.ProductResponse, err error) {
	row, err := s.repo.GetProductByID(ctx, id, sellerID)
	if err != nil {
		return respPayload, err
	}
	if row.ID == "" {
		return respPayload, errs.ErrProductNotFound
	}

	return productRowToResponse(row), nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id string, payload dto.UpdateProductRequest, sellerID string) (respPayload dto.ProductResponse, err error) {
	row, err := s.repo.GetProductByID(ctx, id, sellerID)
	if err != nil {
		return respPayload, err
	}
	if row.ID == "" {
		return respPayload, errs.ErrProductNotFound
	}

	categoryName := row.CategoryName

	if payload.CategoryID != "" && payload.CategoryID != row.CategoryID {
		newCategory, err := s.categoryRepo.GetCategoryByID(ctx, payload.CategoryID, sellerID)
		if err != nil {
			return respPayload, err
		}
		if newCategory.ID == "" {
			return respPayload, errs.ErrCategoryNotFound
		}
		row.CategoryID = newCategory.ID
		categoryName = newCategory.Name
	}

	if payload.Name != "" {
		row.Name = payload.Name
	}
	if payload.Description != "" {
		row.Description = payload.Description
	}
	if payload.Color != "" {
		row.Color = payload.Color
	}
	if payload.Image != "" {
		row.Image = payload.Image
	}
	if payload.Price != "" {
		row.Price = payload.Price
	}

	if err := s.repo.UpdateProduct(ctx, row.Product); err != nil {
		return respPayload, err
	}

	respPayload = dto.ProductResponse{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Color:       row.Color,
		Image:       row.Image,
		Price:       row.Price,
		Category: dto.CategoryRef{
			ID:   row.CategoryID,
			Name: categoryName,
		},
	}

	s.publishEvent(dto.EventProductUpdated, respPayload)

	return
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string, sellerID string) (err error) {
	row, err := s.repo.GetProductByID(ctx, id, sellerID)
	if err != nil {
		return err
	}
	if row.ID == "" {
		return errs.ErrProductNotFound
	}

	orderItemCount, err := s.repo.CountOrderItemsByProductID(ctx, row.ID)
	if err != nil {
		return err
	}
	if orderItemCount > 0 {
		return errs.ErrProductHasOrderItems
	}

	if err := s.repo.DeleteProduct(ctx, row.ID); err != nil {
		return err
	}

	s.publishEvent(dto.EventProductDeleted, productRowToResponse(row))

	return nil
}

func (s *ProductServiceImpl) publishEvent(eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err = s.publisher.Publish(jsonMsg)
		if err == nil {
			return
		}
		log.Warn().Err(err).Str("component", "publishEvent").Msgf("failed to write Kafka message (attempt %d/%d)", i+1, maxRetries)
		time.Sleep(time.Second * time.Duration(i+1))
	}

	log.Error().Err(err).Str("component", "publishEvent").Msg("giving up on Kafka message")
}

func productRowToResponse(row repository.ProductRow) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Color:       row.Color,
		Image:       row.Image,
		Price:       row.Price,
		Category: dto.CategoryRef{
			ID:   row.CategoryID,
			Name: row.CategoryName,
		},
	}
}
