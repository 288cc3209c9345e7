package http

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	domproduct "example.com/protein-store/internal/domain/product"
)

const maxUploadBytes = 32 << 20

var errNameRequired = errors.New("product name required")

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	filter := domproduct.ListFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}

	products, err := a.productSvc.List(r.Context(), filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	p, err := a.productSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		respondError(w, http.StatusBadRequest, errNameRequired)
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil && r.FormValue("price") != "" {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	p := &domproduct.Product{
		Name:        name,
		Description: r.FormValue("description"),
		Price:       price,
		Category:    r.FormValue("category"),
		Featured:    truthy(r.FormValue("featured")),
	}
	p.ImagePath = a.storeUpload(r)

	created, err := a.productSvc.Create(r.Context(), p)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapProduct(created))
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	patch := &domproduct.Product{ID: id}
	patch.Name = r.FormValue("name")
	patch.Description = r.FormValue("description")
	patch.Category = r.FormValue("category")
	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		patch.Price = price
	}

	setFeatured := false
	if vals, ok := r.MultipartForm.Value["featured"]; ok && len(vals) > 0 {
		setFeatured = true
		patch.Featured = truthy(vals[0])
	}
	patch.ImagePath = a.storeUpload(r)

	updated, err := a.productSvc.Update(r.Context(), patch, setFeatured)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(updated))
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.productSvc.Delete(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	log.Printf("product %d deleted by %s", id, adminUsername(r.Context()))
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (a *API) handleServeUpload(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(r.URL.Path)
	http.ServeFile(w, r, filepath.Join(a.media.Dir(), filename))
}

// storeUpload saves the request's image file, if any, and returns the
// stored filename. Uploads with an unsupported extension are skipped,
// not rejected.
func (a *API) storeUpload(r *http.Request) string {
	file, header, err := r.FormFile("image")
	if err != nil {
		return ""
	}
	defer file.Close()

	if !a.media.Allowed(header.Filename) {
		log.Printf("skipping upload with unsupported extension: %s", header.Filename)
		return ""
	}
	name, err := a.media.Save(file, header.Filename)
	if err != nil {
		log.Printf("storing upload %s failed: %v", header.Filename, err)
		return ""
	}
	return name
}

func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "t", "yes", "on":
		return true
	}
	return false
}
