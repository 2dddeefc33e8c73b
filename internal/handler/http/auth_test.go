package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-biz-reviews/internal/service"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
	"github.com/MKhiriev/go-biz-reviews/models"
)

func TestRegister_Success(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &fakeAuthService{
			registerUser: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
				return models.User{UserID: 1, Name: req.Name, Email: req.Email}, nil
			},
		},
	})

	body := `{"name":"John","email":"john@example.com","password":"hunter2"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.IDResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.ID != 1 {
		t.Errorf("expected id=1, got %d", resp.ID)
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &fakeAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &fakeAuthService{
			registerUser: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
				return models.User{}, store.ErrEmailAlreadyExists
			},
		},
	})

	body := `{"name":"John","email":"taken@example.com","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Error != store.ErrEmailAlreadyExists.Error() {
		t.Errorf("unexpected error message %q", resp.Error)
	}
}

func TestLogin_Success(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &fakeAuthService{
			login: func(_ context.Context, req models.LoginRequest) (models.User, error) {
				return models.User{UserID: 5, Email: req.Email}, nil
			},
			createToken: func(_ context.Context, user models.User) (models.Token, error) {
				return models.Token{SignedString: "signed-jwt", UserID: user.UserID}, nil
			},
		},
	})

	body := `{"email":"john@example.com","password":"hunter2"}`
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Token != "signed-jwt" {
		t.Errorf("expected token in body, got %q", resp.Token)
	}
	if resp.UserID != 5 {
		t.Errorf("expected userId=5, got %d", resp.UserID)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &fakeAuthService{
			login: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
				return models.User{}, service.ErrInvalidCredentials
			},
		},
	})

	body := `{"email":"john@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Error != "invalid email or password" {
		t.Errorf("unexpected error message %q", resp.Error)
	}
}
