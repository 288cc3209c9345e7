package http

import (
	"errors"
	"net/http"

	domcontent "example.com/protein-store/internal/domain/content"
)

type aboutRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type contactRequest struct {
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	WhatsappLink string `json:"whatsappLink" validate:"omitempty,url"`
}

func (a *API) handleGetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := a.contentSvc.About(r.Context())
	if err != nil {
		if errors.Is(err, domcontent.ErrNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{"about": nil})
			return
		}
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"about": mapAbout(about)})
}

func (a *API) handleUpdateAbout(w http.ResponseWriter, r *http.Request) {
	var req aboutRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	about, err := a.contentSvc.UpdateAbout(r.Context(), &domcontent.About{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "about": mapAbout(about)})
}

func (a *API) handleGetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := a.contentSvc.Contact(r.Context())
	if err != nil {
		if errors.Is(err, domcontent.ErrNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{"contact": nil})
			return
		}
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"contact": mapContact(contact)})
}

func (a *API) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	contact, err := a.contentSvc.UpdateContact(r.Context(), &domcontent.Contact{
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		WhatsappLink: req.WhatsappLink,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "contact": mapContact(contact)})
}
