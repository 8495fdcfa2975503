package catalog

import (
	"context"
	"encoding/json"
	"strings"

	"ai-shopassist-be/pkg/store"
)

// Sentinels applied when the backing record omits a field.
const (
	DefaultBrand = "Generic Brand"
	DefaultImage = "default-product.jpg"
	NoPrice      = "N/A"
)

// Source is the raw catalog collaborator. Implementations return [] for
// unknown categories and never treat "not found" as an error.
type Source interface {
	ListCategories(ctx context.Context) ([]string, error)
	FetchProducts(ctx context.Context, category string) ([]RawProduct, error)
}

// RawProduct mirrors a stored record before normalization. Price arrives in
// whatever shape the document held: a number, "$1299", or "N/A".
type RawProduct struct {
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Price          json.RawMessage `json:"price"`
	Specifications []string        `json:"specifications"`
	Image          string          `json:"image"`
}

// Accessor loads products from the source and normalizes them into the
// uniform in-memory shape the pipeline works with. Every call re-reads the
// source, so a snapshot is never older than the turn that requested it.
type Accessor struct {
	source       Source
	baseImageURL string
}

func NewAccessor(source Source, baseImageURL string) *Accessor {
	return &Accessor{source: source, baseImageURL: strings.TrimRight(baseImageURL, "/")}
}

// Categories returns the set of known category names, lowercased.
func (a *Accessor) Categories(ctx context.Context) ([]string, error) {
	raw, err := a.source.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		out = append(out, strings.ToLower(strings.TrimSpace(c)))
	}
	return out, nil
}

// Products returns the normalized snapshot for one category. Unknown
// categories yield an empty slice.
func (a *Accessor) Products(ctx context.Context, category string) ([]store.Product, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	raw, err := a.source.FetchProducts(ctx, category)
	if err != nil {
		return nil, err
	}
	products := make([]store.Product, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		products = append(products, store.Product{
			Name:     strings.TrimSpace(r.Name),
			Brand:    normalizeBrand(r.Brand),
			Price:    normalizePrice(r.Price),
			Features: normalizeFeatures(r.Specifications),
			Image:    a.normalizeImage(r.Image),
			Category: category,
		})
	}
	return products, nil
}

// HasProduct reports whether name exactly matches a product in the current
// snapshot for category. This backs the orchestrator's validation of
// LLM-proposed names.
func (a *Accessor) HasProduct(ctx context.Context, category, name string) (bool, error) {
	products, err := a.Products(ctx, category)
	if err != nil {
		return false, err
	}
	for _, p := range products {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func normalizeBrand(brand string) string {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return DefaultBrand
	}
	return brand
}

// normalizePrice folds the raw JSON forms into the display string.
func normalizePrice(raw json.RawMessage) string {
	if len(raw) == 0 {
		return NoPrice
	}

	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return PriceString(asNumber)
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if value, ok := ParsePrice(asString); ok {
			return PriceString(value)
		}
	}
	return NoPrice
}

func normalizeFeatures(specs []string) []string {
	out := make([]string, 0, len(specs))
	for _, s := range specs {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (a *Accessor) normalizeImage(image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		image = DefaultImage
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	if a.baseImageURL == "" {
		return image
	}
	return a.baseImageURL + "/" + image
}
