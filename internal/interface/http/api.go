package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcontent "example.com/protein-store/internal/domain/content"
	domproduct "example.com/protein-store/internal/domain/product"
	"example.com/protein-store/internal/infra/media"
	authuc "example.com/protein-store/internal/usecase/auth"
	contentuc "example.com/protein-store/internal/usecase/content"
	productuc "example.com/protein-store/internal/usecase/product"
)

type API struct {
	productSvc *productuc.Service
	contentSvc *contentuc.Service
	authSvc    *authuc.Service
	tokenSvc   authuc.TokenService
	media      *media.Store
	validator  *validator.Validate
}

type Dependencies struct {
	ProductService *productuc.Service
	ContentService *contentuc.Service
	AuthService    *authuc.Service
	TokenService   authuc.TokenService
	MediaStore     *media.Store
}

func NewAPI(deps Dependencies) *API {
	return &API{
		productSvc: deps.ProductService,
		contentSvc: deps.ContentService,
		authSvc:    deps.AuthService,
		tokenSvc:   deps.TokenService,
		media:      deps.MediaStore,
		validator:  validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Post("/admin/login", a.handleLogin)

		r.Get("/products", a.handleListProducts)
		r.Get("/products/{id}", a.handleGetProduct)
		r.Get("/about", a.handleGetAbout)
		r.Get("/contact", a.handleGetContact)
		r.Get("/uploads/{filename}", a.handleServeUpload)

		r.Group(func(pr chi.Router) {
			pr.Use(a.authMiddleware)
			pr.Post("/products", a.handleCreateProduct)
			pr.Put("/products/{id}", a.handleUpdateProduct)
			pr.Delete("/products/{id}", a.handleDeleteProduct)
			pr.Put("/about", a.handleUpdateAbout)
			pr.Put("/contact", a.handleUpdateContact)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func mapProduct(p *domproduct.Product) map[string]any {
	var imageURL any
	if p.ImagePath != "" {
		imageURL = media.PublicPath(p.ImagePath)
	}
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"category":    p.Category,
		"image_url":   imageURL,
		"featured":    p.Featured,
		"created_at":  p.CreatedAt,
	}
}

func mapAbout(a *domcontent.About) map[string]any {
	return map[string]any{
		"id":          a.ID,
		"title":       a.Title,
		"content":     a.Content,
		"lastUpdated": a.LastUpdated,
	}
}

func mapContact(c *domcontent.Contact) map[string]any {
	return map[string]any{
		"id":           c.ID,
		"email":        c.Email,
		"phone":        c.Phone,
		"address":      c.Address,
		"whatsappLink": c.WhatsappLink,
		"lastUpdated":  c.LastUpdated,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domcontent.ErrNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, authuc.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err)
	case errors.Is(err, media.ErrUnsupportedImage):
		respondError(w, http.StatusUnprocessableEntity, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
