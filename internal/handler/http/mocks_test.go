package http

import (
	"context"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/service"
	"github.com/MKhiriev/go-biz-reviews/models"
)

// Hand-rolled service fakes with function fields, mirroring the repository
// fakes used in the service tests. Unset methods panic so that a handler
// reaching an unexpected service shows up as a test failure immediately.

type fakeAuthService struct {
	registerUser func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	login        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createToken  func(ctx context.Context, user models.User) (models.Token, error)
	parseToken   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.registerUser(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return f.login(ctx, req)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return f.createToken(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseToken(ctx, tokenString)
}

type fakeUserService struct {
	getUser func(ctx context.Context, userID int64) (models.User, error)
}

func (f *fakeUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return f.getUser(ctx, userID)
}

type fakeBusinessService struct {
	list        func(ctx context.Context) ([]models.Business, error)
	get         func(ctx context.Context, businessID int64) (models.Business, error)
	listByOwner func(ctx context.Context, ownerID int64) ([]models.Business, error)
	create      func(ctx context.Context, principal models.Principal, req models.CreateBusinessRequest) (models.Business, error)
	update      func(ctx context.Context, principal models.Principal, businessID int64, update models.BusinessUpdate) error
	delete      func(ctx context.Context, principal models.Principal, businessID int64) error
}

func (f *fakeBusinessService) List(ctx context.Context) ([]models.Business, error) {
	return f.list(ctx)
}

func (f *fakeBusinessService) Get(ctx context.Context, businessID int64) (models.Business, error) {
	return f.get(ctx, businessID)
}

func (f *fakeBusinessService) ListByOwner(ctx context.Context, ownerID int64) ([]models.Business, error) {
	return f.listByOwner(ctx, ownerID)
}

func (f *fakeBusinessService) Create(ctx context.Context, principal models.Principal, req models.CreateBusinessRequest) (models.Business, error) {
	return f.create(ctx, principal, req)
}

func (f *fakeBusinessService) Update(ctx context.Context, principal models.Principal, businessID int64, update models.BusinessUpdate) error {
	return f.update(ctx, principal, businessID, update)
}

func (f *fakeBusinessService) Delete(ctx context.Context, principal models.Principal, businessID int64) error {
	return f.delete(ctx, principal, businessID)
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, logger.Nop())
}
