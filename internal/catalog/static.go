package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var dataFS embed.FS

// LoadStatic reads the bundled dataset.
func LoadStatic() (Dataset, error) {
	var ds Dataset
	files := []struct {
		name string
		dst  any
	}{
		{"data/products.json", &ds.Products},
		{"data/categories.json", &ds.Categories},
		{"data/services.json", &ds.Services},
		{"data/models.json", &ds.Models},
	}
	for _, f := range files {
		b, err := dataFS.ReadFile(f.name)
		if err != nil {
			return Dataset{}, fmt.Errorf("read %s: %w", f.name, err)
		}
		if err := json.Unmarshal(b, f.dst); err != nil {
			return Dataset{}, fmt.Errorf("decode %s: %w", f.name, err)
		}
	}
	return ds, nil
}
