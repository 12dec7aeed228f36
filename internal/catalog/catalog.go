package catalog

import "sort"

// AllBrands selects every brand in ServicePrices.
const AllBrands = "all"

// Catalog is the read-only query surface used by the cart, the wizard and the HTTP layer.
// Every lookup reports whether the key exists.
type Catalog interface {
	ProductByID(id string) (Product, bool)
	ProductBySlug(slug string) (Product, bool)
	Products(categoryID string) []Product
	Categories() []Category
	CategoryBySlug(slug string) (Category, bool)
	Brands() []string
	ModelsOf(brand string) ([]string, bool)
	HasModel(brand, model string) bool
	ServicePrices(brand string) []ServicePrice
	ServicePriceByID(id string) (ServicePrice, bool)
}

// Index is an in-memory Catalog built once from a Dataset.
type Index struct {
	ds         Dataset
	byID       map[string]int
	bySlug     map[string]int
	catBySlug  map[string]int
	models     map[string][]string
	priceByID  map[string]int
	brandOrder []string
}

func NewIndex(ds Dataset) *Index {
	ix := &Index{
		ds:        ds,
		byID:      make(map[string]int, len(ds.Products)),
		bySlug:    make(map[string]int, len(ds.Products)),
		catBySlug: make(map[string]int, len(ds.Categories)),
		models:    make(map[string][]string, len(ds.Models)),
		priceByID: make(map[string]int, len(ds.Services)),
	}
	for i, p := range ds.Products {
		ix.byID[p.ID] = i
		ix.bySlug[p.Slug] = i
	}
	for i, c := range ds.Categories {
		ix.catBySlug[c.Slug] = i
	}
	for _, bm := range ds.Models {
		if _, ok := ix.models[bm.Brand]; !ok {
			ix.brandOrder = append(ix.brandOrder, bm.Brand)
		}
		ix.models[bm.Brand] = append(ix.models[bm.Brand], bm.Models...)
	}
	for i, s := range ds.Services {
		ix.priceByID[s.ID] = i
	}
	return ix
}

func (ix *Index) ProductByID(id string) (Product, bool) {
	i, ok := ix.byID[id]
	if !ok {
		return Product{}, false
	}
	return ix.ds.Products[i], true
}

func (ix *Index) ProductBySlug(slug string) (Product, bool) {
	i, ok := ix.bySlug[slug]
	if !ok {
		return Product{}, false
	}
	return ix.ds.Products[i], true
}

// Products filters by category id; empty or "all" returns everything.
func (ix *Index) Products(categoryID string) []Product {
	out := make([]Product, 0, len(ix.ds.Products))
	for _, p := range ix.ds.Products {
		if categoryID == "" || categoryID == "all" || p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

func (ix *Index) Categories() []Category {
	return append([]Category(nil), ix.ds.Categories...)
}

func (ix *Index) CategoryBySlug(slug string) (Category, bool) {
	i, ok := ix.catBySlug[slug]
	if !ok {
		return Category{}, false
	}
	return ix.ds.Categories[i], true
}

func (ix *Index) Brands() []string {
	return append([]string(nil), ix.brandOrder...)
}

func (ix *Index) ModelsOf(brand string) ([]string, bool) {
	ms, ok := ix.models[brand]
	if !ok {
		return nil, false
	}
	return append([]string(nil), ms...), true
}

func (ix *Index) HasModel(brand, model string) bool {
	for _, m := range ix.models[brand] {
		if m == model {
			return true
		}
	}
	return false
}

func (ix *Index) ServicePrices(brand string) []ServicePrice {
	out := make([]ServicePrice, 0, len(ix.ds.Services))
	for _, s := range ix.ds.Services {
		if brand == "" || brand == AllBrands || s.DeviceBrand == brand {
			out = append(out, s)
		}
	}
	return out
}

func (ix *Index) ServicePriceByID(id string) (ServicePrice, bool) {
	i, ok := ix.priceByID[id]
	if !ok {
		return ServicePrice{}, false
	}
	return ix.ds.Services[i], true
}

// PriceBrands lists the distinct brands of the price list, sorted.
func (ix *Index) PriceBrands() []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range ix.ds.Services {
		if !seen[s.DeviceBrand] {
			seen[s.DeviceBrand] = true
			out = append(out, s.DeviceBrand)
		}
	}
	sort.Strings(out)
	return out
}
