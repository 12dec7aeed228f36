package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-repair-shop/internal/catalog"
	"github.com/ariefcatur/go-repair-shop/internal/locale"
	"github.com/go-chi/chi/v5"
)

const keyProductNotFound = "shop.productNotFound"

type CatalogHandler struct {
	Catalog catalog.Catalog
}

func (h *CatalogHandler) Register(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{slug}", h.getProduct)
	r.Get("/categories", h.listCategories)
	r.Get("/categories/{slug}", h.getCategory)
	r.Get("/brands", h.listBrands)
	r.Get("/brands/{brand}/models", h.listModels)
	r.Get("/prices", h.listPrices)
	r.Get("/prices/{id}", h.getPrice)
}

// GET /products?category=<slug>
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	categoryID := ""
	if slug := r.URL.Query().Get("category"); slug != "" {
		c, ok := h.Catalog.CategoryBySlug(slug)
		if !ok {
			respondError(w, http.StatusNotFound, "category not found", CodeNotFound)
			return
		}
		categoryID = c.ID
	}
	writeJSON(w, http.StatusOK, h.Catalog.Products(categoryID))
}

func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Catalog.ProductBySlug(chi.URLParam(r, "slug"))
	if !ok {
		respondError(w, http.StatusNotFound, locale.T(localeFrom(r.Context()), keyProductNotFound), CodeNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Categories())
}

type categoryResp struct {
	Category catalog.Category  `json:"category"`
	Products []catalog.Product `json:"products"`
}

func (h *CatalogHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, ok := h.Catalog.CategoryBySlug(chi.URLParam(r, "slug"))
	if !ok {
		respondError(w, http.StatusNotFound, "category not found", CodeNotFound)
		return
	}
	writeJSON(w, http.StatusOK, categoryResp{Category: c, Products: h.Catalog.Products(c.ID)})
}

func (h *CatalogHandler) listBrands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Brands())
}

func (h *CatalogHandler) listModels(w http.ResponseWriter, r *http.Request) {
	models, ok := h.Catalog.ModelsOf(chi.URLParam(r, "brand"))
	if !ok {
		respondError(w, http.StatusNotFound, "brand not found", CodeNotFound)
		return
	}
	writeJSON(w, http.StatusOK, models)
}

// GET /prices?brand=<brand|all>
func (h *CatalogHandler) listPrices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.ServicePrices(r.URL.Query().Get("brand")))
}

func (h *CatalogHandler) getPrice(w http.ResponseWriter, r *http.Request) {
	sp, ok := h.Catalog.ServicePriceByID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "service price not found", CodeNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sp)
}
