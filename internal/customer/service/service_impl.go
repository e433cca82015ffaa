package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/customer/domain"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db"
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
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.CreateCustomerResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	if err := s.validate(ctx, s.db, name, email, phone); err != nil {
		return domain.CreateCustomerResponse{}, err
	}

	customer := domain.Customer{
		ID:        s.genID.Generate(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		// The unique index is the backstop for concurrent creates with the
		// same email; the pre-check above is only an optimization.
		if db.IsDuplicateKeyErr(err) {
			return domain.CreateCustomerResponse{}, domain.ErrEmailExists
		}
		return domain.CreateCustomerResponse{}, err
	}

	return domain.CreateCustomerResponse{
		Customer: customer,
		Message:  "Customer created successfully.",
	}, nil
}

func (s *Service) BulkCreate(ctx context.Context, input []domain.CreateCustomerRequest) (domain.BulkCreateResponse, error) {
	resp := domain.BulkCreateResponse{
		CreatedCustomers: []domain.Customer{},
		Errors:           []domain.BulkError{},
	}

	if len(input) == 0 {
		resp.Errors = append(resp.Errors, domain.BulkError{
			Index:   -1,
			Message: "Customer list cannot be empty.",
		})
		resp.Message = "No customers created."
		return resp, nil
	}

	// One outer transaction per batch with a savepoint per row. A failed row
	// rolls back only its own savepoint; the outer transaction always
	// commits, so the valid subset is durable regardless of other rows.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for idx, in := range input {
			name := strings.TrimSpace(in.Name)
			email := strings.TrimSpace(in.Email)
			phone := strings.TrimSpace(in.Phone)

			// validate runs against tx, so the uniqueness pre-check also
			// sees rows inserted earlier in this batch.
			if err := s.validate(ctx, tx, name, email, phone); err != nil {
				resp.Errors = append(resp.Errors, bulkError(idx, email, err))
				continue
			}

			sp := fmt.Sprintf("bulk_customer_%d", idx)
			if err := tx.SavePoint(sp).Error; err != nil {
				return err
			}

			customer := domain.Customer{
				ID:        s.genID.Generate(),
				Name:      name,
				Email:     email,
				Phone:     phone,
				CreatedAt: time.Now().UTC(),
			}

			if err := s.repo.Insert(ctx, tx, &customer); err != nil {
				if rbErr := tx.RollbackTo(sp).Error; rbErr != nil {
					return rbErr
				}
				if db.IsDuplicateKeyErr(err) {
					resp.Errors = append(resp.Errors, bulkError(idx, email, domain.ErrEmailExists))
				} else {
					s.log.Error("bulk create row failed", zap.Int("index", idx), zap.Error(err))
					resp.Errors = append(resp.Errors, domain.BulkError{Index: idx, Email: email, Message: "Unexpected error."})
				}
				continue
			}

			resp.CreatedCustomers = append(resp.CreatedCustomers, customer)
		}

		return nil
	})
	if err != nil {
		return domain.BulkCreateResponse{}, err
	}

	resp.Message = fmt.Sprintf("Created %d of %d customers.", len(resp.CreatedCustomers), len(input))
	return resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListCustomerRequest) (domain.ListCustomerResponse, error) {
	order, err := option.SortClause(req.OrderBy, domain.SortFields, "created_at desc, id desc")
	if err != nil {
		return domain.ListCustomerResponse{}, err
	}

	filter := domain.Filter{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		PhonePattern: strings.TrimSpace(req.PhonePattern),
		CreatedFrom:  req.CreatedFrom,
		CreatedTo:    req.CreatedTo,
	}

	items, err := s.repo.List(ctx, s.db, filter, order, req.Pagination)
	if err != nil {
		return domain.ListCustomerResponse{}, err
	}

	customers := make([]domain.Customer, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		customers = append(customers, *item)
	}

	return domain.ListCustomerResponse{
		Customers: customers,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}, nil
}

// validate runs the per-row checks in contract order: required fields, email
// format, email uniqueness against rows visible on conn (committed rows, plus
// earlier rows of the batch when conn is the bulk transaction), phone pattern.
func (s *Service) validate(ctx context.Context, conn *gorm.DB, name, email, phone string) error {
	if name == "" {
		return domain.ErrNameRequired
	}
	if email == "" {
		return domain.ErrEmailRequired
	}
	if err := domain.ValidateEmailFormat(email); err != nil {
		return err
	}
	exists, err := s.repo.EmailExists(ctx, conn, email)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrEmailExists
	}
	return domain.ValidatePhone(phone)
}

func bulkError(idx int, email string, err error) domain.BulkError {
	return domain.BulkError{
		Index:   idx,
		Email:   email,
		Message: domain.Message(err),
	}
}
