package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aselbek/bazar-backend/internal/auth"
	"github.com/aselbek/bazar-backend/internal/basket"
	"github.com/aselbek/bazar-backend/internal/catalog"
	"github.com/aselbek/bazar-backend/internal/products"
	"github.com/aselbek/bazar-backend/internal/reviews"
	"github.com/aselbek/bazar-backend/internal/users"
	pkgAuth "github.com/aselbek/bazar-backend/pkg/auth"
	"github.com/aselbek/bazar-backend/pkg/config"
	"github.com/aselbek/bazar-backend/pkg/i18n"
	"github.com/aselbek/bazar-backend/pkg/pagination"
)

type stubAuthService struct{}

func (stubAuthService) Register(context.Context, auth.RegisterRequest) (*users.UserDTO, error) {
	return &users.UserDTO{Username: "stub"}, nil
}

func (stubAuthService) Login(context.Context, auth.LoginRequest) (*auth.LoginResponse, error) {
	return &auth.LoginResponse{AccessToken: "a", RefreshToken: "r"}, nil
}

func (stubAuthService) Refresh(context.Context, auth.RefreshRequest) (*auth.RefreshResponse, error) {
	return &auth.RefreshResponse{AccessToken: "a"}, nil
}

func (stubAuthService) Logout(context.Context, auth.RefreshRequest) error {
	return nil
}

type stubUserService struct{}

func (stubUserService) Me(_ context.Context, id uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{ID: id}, nil
}

func (stubUserService) UpdateMe(_ context.Context, id uuid.UUID, _ users.UpdateProfileRequest) (*users.UserDTO, error) {
	return &users.UserDTO{ID: id}, nil
}

type stubCatalogService struct{}

func (stubCatalogService) ListCategories(context.Context, string) ([]catalog.CategoryDTO, error) {
	return []catalog.CategoryDTO{{ID: 1, CategoryName: "Food"}}, nil
}

func (stubCatalogService) GetCategory(context.Context, int64, string) (*catalog.CategoryDTO, error) {
	return &catalog.CategoryDTO{ID: 1, CategoryName: "Food"}, nil
}

func (stubCatalogService) ListSubCategories(context.Context, string) ([]catalog.SubCategoryDTO, error) {
	return nil, nil
}

func (stubCatalogService) GetSubCategory(context.Context, int64, string) (*catalog.SubCategoryDetailDTO, error) {
	return &catalog.SubCategoryDetailDTO{}, nil
}

type stubProductService struct{}

func (stubProductService) List(context.Context, products.ListParams, string) (*products.ListResult, error) {
	return &products.ListResult{Items: []products.ListEntry{}, Pagination: pagination.Page{Page: 1, Limit: 10}}, nil
}

func (stubProductService) Get(context.Context, int64, string) (*products.Detail, error) {
	return &products.Detail{}, nil
}

func (stubProductService) ListEntriesBySubCategory(context.Context, int64, string) ([]products.ListEntry, error) {
	return nil, nil
}

type stubReviewService struct{}

func (stubReviewService) Create(context.Context, uuid.UUID, reviews.CreateReviewRequest) (*reviews.ReviewDTO, error) {
	return &reviews.ReviewDTO{ID: 1}, nil
}

func (stubReviewService) Get(context.Context, int64) (*reviews.ReviewDTO, error) {
	return &reviews.ReviewDTO{ID: 1}, nil
}

func (stubReviewService) Update(context.Context, uuid.UUID, int64, reviews.UpdateReviewRequest) (*reviews.ReviewDTO, error) {
	return &reviews.ReviewDTO{ID: 1}, nil
}

func (stubReviewService) Delete(context.Context, uuid.UUID, int64) error {
	return nil
}

func (stubReviewService) ListByProduct(context.Context, int64) ([]reviews.ReviewDTO, error) {
	return nil, nil
}

type stubBasketService struct{}

func (stubBasketService) Get(_ context.Context, userID uuid.UUID) (*basket.BasketDTO, error) {
	return &basket.BasketDTO{ID: 1, User: userID}, nil
}

func (stubBasketService) AddItem(context.Context, uuid.UUID, basket.AddItemRequest) (*basket.BasketItemDTO, error) {
	return &basket.BasketItemDTO{ID: 1}, nil
}

func (stubBasketService) UpdateItem(context.Context, uuid.UUID, int64, basket.UpdateItemRequest) (*basket.BasketItemDTO, error) {
	return &basket.BasketItemDTO{ID: 1}, nil
}

func (stubBasketService) DeleteItem(context.Context, uuid.UUID, int64) error {
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test"},
		JWT: config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 60, RefreshTokenTTLMinutes: 120},
		I18n: config.I18nConfig{
			DefaultLocale:    "ru",
			SupportedLocales: []string{"ru", "en", "ky"},
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	return NewRouter(Params{
		Config:         cfg,
		Locales:        i18n.NewMatcher(cfg.I18n.DefaultLocale, cfg.I18n.SupportedLocales),
		AuthService:    stubAuthService{},
		UserService:    stubUserService{},
		CatalogService: stubCatalogService{},
		ProductService: stubProductService{},
		ReviewService:  stubReviewService{},
		BasketService:  stubBasketService{},
	})
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPublicCatalogNeedsNoToken(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("categories must render as a bare array: %v", err)
	}
}

func TestProtectedGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/me"},
		{http.MethodGet, "/api/v1/basket"},
		{http.MethodPost, "/api/v1/reviews"},
	} {
		req := httptest.NewRequest(target.method, target.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", target.method, target.path, rec.Code)
		}
	}
}

func TestLogoutRequiresBearerToken(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	body := strings.NewReader(`{"refresh":"some-token"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a bearer token, got %d", rec.Code)
	}

	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.TokenPayload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", strings.NewReader(`{"refresh":"some-token"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusResetContent {
		t.Fatalf("expected 205 with a bearer token, got %d", rec.Code)
	}
}

func TestProtectedGroupAcceptsValidJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	userID := uuid.New()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.TokenPayload{UserID: userID})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/basket", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body basket.BasketDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.User != userID {
		t.Fatalf("expected caller %s, got %s", userID, body.User)
	}
}

func TestProductListRejectsUnknownOrdering(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?ordering=bogus", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Detail == "" {
		t.Fatal("expected a detail message")
	}
}

func TestLocaleNegotiationSetsContentLanguage(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.Header.Set("Accept-Language", "ky-KG,ky;q=0.9")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Language"); got != "ky" {
		t.Fatalf("expected ky, got %q", got)
	}
}
