package catalog

import "github.com/ariefcatur/go-repair-shop/internal/money"

type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type Product struct {
	ID          string       `json:"id"`
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Category    string       `json:"category"`
	Price       money.Money  `json:"price"`
	CompareAt   *money.Money `json:"compareAt,omitempty"`
	Images      []Image      `json:"images"`
	Brand       string       `json:"brand,omitempty"`
	Stock       int          `json:"stock"`
	Badges      []string     `json:"badges,omitempty"`
	Description string       `json:"description,omitempty"`
}

func (p Product) InStock() bool { return p.Stock > 0 }

type Category struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// ServicePrice is one row of the repair price list.
type ServicePrice struct {
	ID             string       `json:"id"`
	Service        string       `json:"service"`
	DeviceBrand    string       `json:"deviceBrand"`
	DeviceModel    string       `json:"deviceModel"`
	Price          money.Money  `json:"price"`
	CompareAtPrice *money.Money `json:"compareAtPrice,omitempty"`
	Duration       int          `json:"duration"` // minutes
	Warranty       int          `json:"warranty"` // days
	Category       string       `json:"category"`
}

type BrandModels struct {
	Brand  string   `json:"brand"`
	Models []string `json:"models"`
}

// Dataset is the raw catalog content, whatever the backend.
type Dataset struct {
	Products   []Product      `json:"products"`
	Categories []Category     `json:"categories"`
	Services   []ServicePrice `json:"services"`
	Models     []BrandModels  `json:"models"`
}
