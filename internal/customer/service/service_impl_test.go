package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/customer/domain"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/customer/repository"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/customer/service"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:memdb_customer_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	schema := []string{
		`CREATE TABLE customers (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE UNIQUE INDEX ux_customers_email_ci ON customers (LOWER(email))`,
	}
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	return db
}

func newService(t *testing.T, db *gorm.DB) domain.Service {
	return newServiceWithRepo(t, db, repository.Provide())
}

func newServiceWithRepo(t *testing.T, db *gorm.DB, repo domain.Repository) domain.Service {
	t.Helper()

	node, err := snowflake.NewNode(2)
	if err != nil {
		t.Fatalf("new node: %v", err)
	}

	return service.New(service.Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repo,
	})
}

// blindPrecheckRepo never reports an existing email, forcing duplicate
// inserts through to the store's unique index.
type blindPrecheckRepo struct {
	domain.Repository
}

func (r blindPrecheckRepo) EmailExists(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	return false, nil
}

func TestCreateCustomerTrimsAndPersists(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newService(t, db)

	resp, err := svc.Create(ctx, domain.CreateCustomerRequest{
		Name:  "  Alice Mensah  ",
		Email: " alice@example.com ",
		Phone: " +233501234567 ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Message != "Customer created successfully." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Customer.Name != "Alice Mensah" || resp.Customer.Email != "alice@example.com" || resp.Customer.Phone != "+233501234567" {
		t.Fatalf("fields not trimmed: %+v", resp.Customer)
	}

	list, err := svc.List(ctx, domain.ListCustomerRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(list.Customers))
	}
	if list.Customers[0].Email != "alice@example.com" {
		t.Fatalf("lookup returned %q", list.Customers[0].Email)
	}
}

func TestCreateCustomerDuplicateEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newService(t, db)

	if _, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "Alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "Other", Email: "ALICE@Example.COM"})
	if err != domain.ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	var count int64
	if err := db.Table("customers").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row after duplicate, got %d", count)
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newService(t, db)

	cases := []struct {
		name string
		req  domain.CreateCustomerRequest
		want error
	}{
		{"empty name", domain.CreateCustomerRequest{Name: "   ", Email: "a@b.com"}, domain.ErrNameRequired},
		{"empty email", domain.CreateCustomerRequest{Name: "A", Email: "  "}, domain.ErrEmailRequired},
		{"bad email", domain.CreateCustomerRequest{Name: "A", Email: "not-an-email"}, domain.ErrInvalidEmail},
		{"bad phone", domain.CreateCustomerRequest{Name: "A", Email: "a@b.com", Phone: "12345"}, domain.ErrInvalidPhone},
		{"short intl phone", domain.CreateCustomerRequest{Name: "A", Email: "c@d.com", Phone: "+123456"}, domain.ErrInvalidPhone},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, tc.req); err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	// Dashed US format is accepted.
	if _, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "A", Email: "e@f.com", Phone: "123-456-7890"}); err != nil {
		t.Fatalf("dashed phone rejected: %v", err)
	}
}

func TestBulkCreateEmptyInput(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newService(t, db)

	resp, err := svc.BulkCreate(ctx, nil)
	if err != nil {
		t.Fatalf("bulk create: %v", err)
	}
	if len(resp.CreatedCustomers) != 0 {
		t.Fatalf("expected no created customers, got %d", len(resp.CreatedCustomers))
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %d", len(resp.Errors))
	}
	if resp.Errors[0].Index != -1 || resp.Errors[0].Message != "Customer list cannot be empty." {
		t.Fatalf("unexpected boundary error: %+v", resp.Errors[0])
	}
}

func TestBulkCreatePartialSuccess(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newService(t, db)

	resp, err := svc.BulkCreate(ctx, []domain.CreateCustomerRequest{
		{Name: "First", Email: "first@example.com"},
		{Name: "Second", Email: "not-an-email"},
		{Name: "Third", Email: "third@example.com"},
	})
	if err != nil {
		t.Fatalf("bulk create: %v", err)
	}

	if len(resp.CreatedCustomers) != 2 {
		t.Fatalf("expected 2 created, got %d", len(resp.CreatedCustomers))
	}
	if resp.CreatedCustomers[0].Email != "first@example.com" || resp.CreatedCustomers[1].Email != "third@example.com" {
		t.Fatalf("success list out of input order: %+v", resp.CreatedCustomers)
	}

	if len(resp.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(resp.Errors))
	}
	if resp.Errors[0].Index != 1 {
		t.Fatalf("error index not correlated: %+v", resp.Errors[0])
	}
	if resp.Errors[0].Message != "Invalid email format." {
		t.Fatalf("unexpected error message: %q", resp.Errors[0].Message)
	}

	var count int64
	if err := db.Table("customers").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 committed rows, got %d", count)
	}
}

func TestBulkCreateDuplicateWithinBatch(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newService(t, db)

	resp, err := svc.BulkCreate(ctx, []domain.CreateCustomerRequest{
		{Name: "First", Email: "dup@example.com"},
		{Name: "Second", Email: "second@example.com"},
		{Name: "Clone", Email: "DUP@example.com"},
	})
	if err != nil {
		t.Fatalf("bulk create: %v", err)
	}

	if len(resp.CreatedCustomers) != 2 {
		t.Fatalf("expected 2 created, got %d", len(resp.CreatedCustomers))
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(resp.Errors))
	}
	if resp.Errors[0].Index != 2 || resp.Errors[0].Message != "Email already exists." {
		t.Fatalf("unexpected duplicate error: %+v", resp.Errors[0])
	}
}

func TestBulkCreateDuplicateAgainstCommittedRows(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newService(t, db)

	if _, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "Existing", Email: "taken@example.com"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	resp, err := svc.BulkCreate(ctx, []domain.CreateCustomerRequest{
		{Name: "New", Email: "fresh@example.com"},
		{Name: "Collides", Email: "Taken@Example.com"},
	})
	if err != nil {
		t.Fatalf("bulk create: %v", err)
	}

	if len(resp.CreatedCustomers) != 1 || resp.CreatedCustomers[0].Email != "fresh@example.com" {
		t.Fatalf("unexpected created set: %+v", resp.CreatedCustomers)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Index != 1 || resp.Errors[0].Message != "Email already exists." {
		t.Fatalf("unexpected errors: %+v", resp.Errors)
	}
}

func TestCreateCustomerStoreBackstopConvertsDuplicate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newServiceWithRepo(t, db, blindPrecheckRepo{repository.Provide()})

	if _, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "Alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// With the pre-check blinded, the unique index is the only defense; the
	// raw store error must still surface as the duplicate-key domain error.
	_, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "Clone", Email: "ALICE@example.com"})
	if err != domain.ErrEmailExists {
		t.Fatalf("expected ErrEmailExists from store backstop, got %v", err)
	}

	var count int64
	if err := db.Table("customers").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
}

func TestBulkCreateStoreBackstopRollsBackRow(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newServiceWithRepo(t, db, blindPrecheckRepo{repository.Provide()})

	resp, err := svc.BulkCreate(ctx, []domain.CreateCustomerRequest{
		{Name: "First", Email: "first@example.com"},
		{Name: "Clone", Email: "FIRST@example.com"},
		{Name: "Third", Email: "third@example.com"},
	})
	if err != nil {
		t.Fatalf("bulk create: %v", err)
	}

	if len(resp.CreatedCustomers) != 2 {
		t.Fatalf("expected 2 created, got %d", len(resp.CreatedCustomers))
	}
	if resp.CreatedCustomers[0].Email != "first@example.com" || resp.CreatedCustomers[1].Email != "third@example.com" {
		t.Fatalf("unexpected created set: %+v", resp.CreatedCustomers)
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(resp.Errors))
	}
	if resp.Errors[0].Index != 1 || resp.Errors[0].Message != "Email already exists." {
		t.Fatalf("unexpected error: %+v", resp.Errors[0])
	}
	if resp.Message != "Created 2 of 3 customers." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}

	// The failed row's savepoint rolled back alone; the batch committed.
	var count int64
	if err := db.Table("customers").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 committed rows, got %d", count)
	}
}

func TestListCustomersFilterAndSort(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newService(t, db)

	seed := []domain.CreateCustomerRequest{
		{Name: "Alice", Email: "alice@example.com", Phone: "+14155550100"},
		{Name: "Bob", Email: "bob@sample.org", Phone: "123-456-7890"},
		{Name: "alicia", Email: "alicia@example.com"},
	}
	for _, req := range seed {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("seed %s: %v", req.Email, err)
		}
	}

	list, err := svc.List(ctx, domain.ListCustomerRequest{
		Filter:  domain.Filter{Name: "ALIC"},
		OrderBy: "name",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Customers) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(list.Customers))
	}
	if list.Customers[0].Name != "Alice" {
		t.Fatalf("sort by name broken: %+v", list.Customers)
	}

	byPhone, err := svc.List(ctx, domain.ListCustomerRequest{
		Filter: domain.Filter{PhonePattern: "+1"},
	})
	if err != nil {
		t.Fatalf("list by phone: %v", err)
	}
	if len(byPhone.Customers) != 1 || byPhone.Customers[0].Name != "Alice" {
		t.Fatalf("phone pattern filter broken: %+v", byPhone.Customers)
	}

	if _, err := svc.List(ctx, domain.ListCustomerRequest{OrderBy: "-secret"}); err == nil {
		t.Fatal("expected invalid sort field error")
	}
}
