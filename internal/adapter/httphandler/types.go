package httphandler

import (
	"time"

	"github.com/serael/catalog/internal/core/domain"
)

type (
	Product struct {
		ID             int64             `json:"id"`
		Name           string            `json:"name"`
		SKU            string            `json:"sku"`
		Brand          string            `json:"brand"`
		Category       string            `json:"category"`
		EANCode        string            `json:"ean_code"`
		Description    string            `json:"description"`
		Features       string            `json:"features"`
		Notes          string            `json:"notes"`
		Material       string            `json:"material"`
		Color          string            `json:"color"`
		Weight         float64           `json:"weight"`
		Desi           float64           `json:"desi"`
		Width          float64           `json:"width"`
		Height         float64           `json:"height"`
		Depth          float64           `json:"depth"`
		WarrantyMonths int               `json:"warranty_months"`
		ImageURL       string            `json:"image_url"`
		Barcodes       map[string]string `json:"barcodes"`
		LegacyBarcodes []string          `json:"legacy_barcodes,omitempty"`
		Archived       bool              `json:"archived"`
		CreatedAt      time.Time         `json:"created_at"`
		UpdatedAt      *time.Time        `json:"updated_at,omitempty"`
	}

	SearchResponse struct {
		Items      []Product `json:"items"`
		TotalCount int       `json:"total_count"`
		Page       int       `json:"page"`
		PageSize   int       `json:"page_size"`
		TotalPages int       `json:"total_pages"`
	}

	BulkRequest struct {
		Action     string  `json:"action"`
		ProductIDs []int64 `json:"product_ids"`
	}

	BulkResponse struct {
		SuccessCount int `json:"success_count"`
		FailCount    int `json:"fail_count"`
	}

	Suggestion struct {
		Text      string `json:"text"`
		Type      string `json:"type"`
		Highlight string `json:"highlight"`
	}

	ImageFailureResponse struct {
		Notify bool `json:"notify"`
	}

	Category struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
)

func toProductJSON(p *domain.Product) Product {
	barcodes := make(map[string]string)
	for _, bf := range domain.BarcodeFields() {
		if v := bf.Get(p); v != "" {
			barcodes[bf.Tag] = v
		}
	}

	return Product{
		ID:             p.ID,
		Name:           p.Name,
		SKU:            p.SKU,
		Brand:          p.Brand,
		Category:       p.DisplayCategory(),
		EANCode:        p.EANCode,
		Description:    p.Description,
		Features:       p.Features,
		Notes:          p.Notes,
		Material:       p.Material,
		Color:          p.Color,
		Weight:         p.Weight,
		Desi:           p.Desi,
		Width:          p.Width,
		Height:         p.Height,
		Depth:          p.Depth,
		WarrantyMonths: p.WarrantyMonths,
		ImageURL:       p.ImageURL,
		Barcodes:       barcodes,
		LegacyBarcodes: domain.ParseBarcodeList(p.BarcodeList),
		Archived:       p.Archived,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toSearchResponse(res domain.SearchResult) SearchResponse {
	items := make([]Product, len(res.Items))
	for i := range res.Items {
		items[i] = toProductJSON(&res.Items[i])
	}
	return SearchResponse{
		Items:      items,
		TotalCount: res.TotalCount,
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalPages: res.TotalPages,
	}
}
