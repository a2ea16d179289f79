package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/maxcopy/maxcopy-backend/internal/ai"
	"github.com/maxcopy/maxcopy-backend/internal/models"
)

// DefaultModelName is recorded on generated content when the caller does not
// pick a model.
const DefaultModelName = "gpt-5.1"

// ProductStore is the repository surface the service needs for products.
type ProductStore interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context, offset, limit int) ([]models.Product, error)
	Create(ctx context.Context, in models.CreateProductInput) (*models.Product, error)
	Update(ctx context.Context, id int64, in models.UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

// AIContentStore is the repository surface the service needs for AI contents.
type AIContentStore interface {
	GetByID(ctx context.Context, id int64) (*models.AIContent, error)
	ListByProduct(ctx context.Context, productID int64, channel, contentType string) ([]models.AIContent, error)
	Create(ctx context.Context, in models.CreateAIContentInput) (*models.AIContent, error)
}

// ProductService orchestrates existence checks, cross-entity rules and the
// generation workflow between the HTTP layer and the repositories.
type ProductService struct {
	products     ProductStore
	aiContents   AIContentStore
	generator    ai.ListingGenerator
	defaultModel string
}

// NewProductService builds the service. defaultModel is used when a
// generation request does not name a model; empty falls back to
// DefaultModelName.
func NewProductService(products ProductStore, aiContents AIContentStore, generator ai.ListingGenerator, defaultModel string) *ProductService {
	if defaultModel == "" {
		defaultModel = DefaultModelName
	}
	return &ProductService{
		products:     products,
		aiContents:   aiContents,
		generator:    generator,
		defaultModel: defaultModel,
	}
}

// isDuplicateKey reports whether err is a MySQL duplicate-entry violation.
func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

func (s *ProductService) ListProducts(ctx context.Context, skip, limit int) ([]models.Product, error) {
	return s.products.List(ctx, skip, limit)
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, in models.CreateProductInput) (*models.Product, error) {
	product, err := s.products.Create(ctx, in)
	if isDuplicateKey(err) {
		return nil, ErrDuplicateSKU
	}
	return product, err
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int64, in models.UpdateProductInput) (*models.Product, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return nil, err
	}
	product, err := s.products.Update(ctx, id, in)
	if isDuplicateKey(err) {
		return nil, ErrDuplicateSKU
	}
	return product, err
}

// DeleteProduct removes the product; its AI contents go with it via the
// store-level cascade.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

func (s *ProductService) GetAIContent(ctx context.Context, id int64) (*models.AIContent, error) {
	content, err := s.aiContents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrAIContentNotFound
	}
	return content, nil
}

// ListAIContentsForProduct returns the product's AI contents, optionally
// narrowed by channel and/or content type. The product must exist.
func (s *ProductService) ListAIContentsForProduct(ctx context.Context, productID int64, channel, contentType string) ([]models.AIContent, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.aiContents.ListByProduct(ctx, productID, channel, contentType)
}

// CreateAIContent persists a directly supplied AI content row after checking
// that the parent product exists.
func (s *ProductService) CreateAIContent(ctx context.Context, in models.CreateAIContentInput) (*models.AIContent, error) {
	if _, err := s.GetProduct(ctx, in.ProductID); err != nil {
		return nil, err
	}
	return s.aiContents.Create(ctx, in)
}

// GenerateListing runs the generation workflow for one product and channel:
// load product, build prompt, call the provider, persist the result as a new
// unapproved AI content row. A provider failure aborts before the persist
// step, so no row is created unless generation succeeds.
func (s *ProductService) GenerateListing(ctx context.Context, productID int64, channel, modelName string) (*models.AIContent, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = s.defaultModel
	}

	payload, err := s.generator.GenerateListing(ctx, ai.ListingRequest{
		Product:   *product,
		Channel:   channel,
		ModelName: modelName,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return s.aiContents.Create(ctx, models.CreateAIContentInput{
		ProductID:     product.ID,
		Channel:       channel,
		ContentType:   ai.ContentTypeForChannel(channel),
		Payload:       payload,
		Approved:      false,
		LastModelUsed: &modelName,
	})
}
