package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/menu"
)

type MenuHandler struct {
	repo menu.Repository
}

func NewMenuHandler(repo menu.Repository) *MenuHandler {
	return &MenuHandler{repo: repo}
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	menus, err := h.repo.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load menus")
		return
	}
	if menus == nil {
		menus = []menu.Menu{}
	}
	writeJSON(w, http.StatusOK, menus)
}

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	m, err := h.repo.GetByID(ctx, chi.URLParam(r, "menuId"))
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			writeError(w, http.StatusNotFound, "menu not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load menu")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

type menuRequest struct {
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Category    string  `json:"category"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
}

func (req *menuRequest) validate() string {
	if req.Name == "" {
		return "missing name"
	}
	if req.Price < 0 {
		return "price must not be negative"
	}
	if req.Category == "" {
		return "missing category"
	}
	return ""
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req menuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	m := &menu.Menu{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
	}
	if err := h.repo.Create(ctx, m); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create menu")
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req menuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	m := &menu.Menu{
		ID:          chi.URLParam(r, "menuId"),
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
	}
	if err := h.repo.Update(ctx, m); err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			writeError(w, http.StatusNotFound, "menu not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update menu")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.repo.Delete(ctx, chi.URLParam(r, "menuId")); err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			writeError(w, http.StatusNotFound, "menu not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete menu")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
