package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ariefcatur/go-repair-shop/internal/money"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Repo reads the catalog tables. The dataset is loaded once and served from an Index.
type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Load(ctx context.Context) (Dataset, error) {
	var ds Dataset
	var err error
	if ds.Categories, err = r.listCategories(ctx); err != nil {
		return Dataset{}, fmt.Errorf("categories: %w", err)
	}
	if ds.Products, err = r.listProducts(ctx); err != nil {
		return Dataset{}, fmt.Errorf("products: %w", err)
	}
	if ds.Services, err = r.listServicePrices(ctx); err != nil {
		return Dataset{}, fmt.Errorf("service prices: %w", err)
	}
	if ds.Models, err = r.listModels(ctx); err != nil {
		return Dataset{}, fmt.Errorf("device models: %w", err)
	}
	return ds, nil
}

func (r *Repo) listCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, slug, name FROM categories ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) listProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, slug, title, category, price_amount::text, currency,
		       compare_at_amount::text, coalesce(brand, ''), stock,
		       coalesce(images, '[]'::jsonb), coalesce(badges, '{}'), coalesce(description, '')
		FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var (
			p         Product
			price     string
			currency  string
			compareAt *string
			images    []byte
		)
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Category, &price, &currency,
			&compareAt, &p.Brand, &p.Stock, &images, &p.Badges, &p.Description); err != nil {
			return nil, err
		}
		if p.Price, err = parseMoney(price, currency); err != nil {
			return nil, fmt.Errorf("product %s: %w", p.ID, err)
		}
		if compareAt != nil {
			m, err := parseMoney(*compareAt, currency)
			if err != nil {
				return nil, fmt.Errorf("product %s: %w", p.ID, err)
			}
			p.CompareAt = &m
		}
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, fmt.Errorf("product %s images: %w", p.ID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) listServicePrices(ctx context.Context) ([]ServicePrice, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, service, device_brand, device_model, price_amount::text, currency,
		       compare_at_amount::text, duration_min, warranty_days, category
		FROM service_prices ORDER BY device_brand, device_model, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ServicePrice
	for rows.Next() {
		var (
			s         ServicePrice
			price     string
			currency  string
			compareAt *string
		)
		if err := rows.Scan(&s.ID, &s.Service, &s.DeviceBrand, &s.DeviceModel, &price, &currency,
			&compareAt, &s.Duration, &s.Warranty, &s.Category); err != nil {
			return nil, err
		}
		if s.Price, err = parseMoney(price, currency); err != nil {
			return nil, fmt.Errorf("service %s: %w", s.ID, err)
		}
		if compareAt != nil {
			m, err := parseMoney(*compareAt, currency)
			if err != nil {
				return nil, fmt.Errorf("service %s: %w", s.ID, err)
			}
			s.CompareAtPrice = &m
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) listModels(ctx context.Context) ([]BrandModels, error) {
	rows, err := r.DB.Query(ctx, `SELECT brand, model FROM device_models ORDER BY brand_position, position`)
	if err != nil {
		return nil, err
	}
	// brand order follows the first row of each brand
	pairs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) ([2]string, error) {
		var p [2]string
		err := row.Scan(&p[0], &p[1])
		return p, err
	})
	if err != nil {
		return nil, err
	}

	var out []BrandModels
	idx := map[string]int{}
	for _, p := range pairs {
		i, ok := idx[p[0]]
		if !ok {
			i = len(out)
			idx[p[0]] = i
			out = append(out, BrandModels{Brand: p[0]})
		}
		out[i].Models = append(out[i].Models, p[1])
	}
	return out, nil
}

func parseMoney(amount, currency string) (money.Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return money.Money{}, fmt.Errorf("amount %q: %w", amount, err)
	}
	c := money.Currency(currency)
	if !c.Valid() {
		return money.Money{}, fmt.Errorf("unknown currency %q", currency)
	}
	return money.Money{Amount: d, Currency: c}, nil
}
