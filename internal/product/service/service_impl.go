package service

import (
	"context"
	"strings"
	"time"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/product/domain"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db/option"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Product{}, domain.ErrNameRequired
	}

	if !req.Price.IsPositive() {
		return domain.Product{}, domain.ErrInvalidPrice
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	if stock < 0 {
		return domain.Product{}, domain.ErrInvalidStock
	}

	product := domain.Product{
		ID:        s.genID.Generate(),
		Name:      name,
		Price:     req.Price,
		Stock:     stock,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (s *Service) List(ctx context.Context, req domain.ListProductRequest) (domain.ListProductResponse, error) {
	order, err := option.SortClause(req.OrderBy, domain.SortFields, "created_at desc, id desc")
	if err != nil {
		return domain.ListProductResponse{}, err
	}

	filter := req.Filter
	filter.Name = strings.TrimSpace(filter.Name)

	items, err := s.repo.List(ctx, s.db, filter, order, req.Pagination)
	if err != nil {
		return domain.ListProductResponse{}, err
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		products = append(products, *item)
	}

	return domain.ListProductResponse{
		Products: products,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

func (s *Service) RestockLowStock(ctx context.Context) (domain.RestockResponse, error) {
	resp := domain.RestockResponse{UpdatedProducts: []domain.RestockedProduct{}}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		low, err := s.repo.FindLowStock(ctx, tx)
		if err != nil {
			return err
		}

		for _, product := range low {
			stock := product.Stock + domain.RestockIncrement
			if err := s.repo.UpdateStock(ctx, tx, product.ID, stock); err != nil {
				return err
			}
			resp.UpdatedProducts = append(resp.UpdatedProducts, domain.RestockedProduct{
				ID:    product.ID,
				Name:  product.Name,
				Stock: stock,
			})
		}

		return nil
	})
	if err != nil {
		return domain.RestockResponse{}, err
	}

	if len(resp.UpdatedProducts) == 0 {
		resp.Message = "No low-stock products found."
	} else {
		resp.Message = "Low stock products updated successfully."
	}
	s.log.Info("restocked low-stock products", zap.Int("count", len(resp.UpdatedProducts)))

	return resp, nil
}
