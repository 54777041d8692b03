package domain

import "time"

type (
	// A Product is one catalog record. Marketplace barcode fields are
	// independently optional; access them through [BarcodeAccessor] or
	// [BarcodeFields] rather than naming columns in calling code.
	Product struct {
		ID           int64
		Name         string
		SKU          string
		Brand        string
		CategoryName string // legacy free-text category
		CategoryID   *int64
		Category     *Category // linked entity, nil when unset
		EANCode      string
		Description  string
		Features     string
		Notes        string
		Material     string
		Color        string

		Weight         float64
		Desi           float64
		Width          float64
		Height         float64
		Depth          float64
		WarrantyMonths int

		ImageURL  string
		ImageURL2 string
		ImageURL3 string
		ImageURL4 string
		ImageURL5 string
		ImageURL6 string

		BarcodeTrendyol     string
		BarcodeHepsiburada  string
		BarcodeN11          string
		BarcodeAmazon       string
		BarcodeGittigidiyor string
		BarcodeCiceksepeti  string
		BarcodePazarama     string
		BarcodePTTAvm       string
		BarcodeIdefix       string
		BarcodeMorhipo      string
		BarcodeTeknosa      string
		BarcodeBoyner       string
		BarcodeKoctas       string
		BarcodeEvidea       string
		BarcodeModanisa     string
		BarcodeFlo          string
		BarcodeBeymen       string
		BarcodeLCW          string
		BarcodeVodafone     string
		BarcodeAkakce       string

		// BarcodeList is the legacy single-column list; see
		// [ParseBarcodeList] for its three historical formats.
		BarcodeList string

		Archived  bool
		CreatedAt time.Time
		UpdatedAt *time.Time
	}

	// A BarcodeField binds a marketplace tag to its field accessor.
	BarcodeField struct {
		Tag string
		Get func(*Product) string
	}
)

// BarcodeTagAny selects the union over every marketplace barcode field.
const BarcodeTagAny = "any"

var barcodeFields = []BarcodeField{
	{"trendyol", func(p *Product) string { return p.BarcodeTrendyol }},
	{"hepsiburada", func(p *Product) string { return p.BarcodeHepsiburada }},
	{"n11", func(p *Product) string { return p.BarcodeN11 }},
	{"amazon", func(p *Product) string { return p.BarcodeAmazon }},
	{"gittigidiyor", func(p *Product) string { return p.BarcodeGittigidiyor }},
	{"ciceksepeti", func(p *Product) string { return p.BarcodeCiceksepeti }},
	{"pazarama", func(p *Product) string { return p.BarcodePazarama }},
	{"pttavm", func(p *Product) string { return p.BarcodePTTAvm }},
	{"idefix", func(p *Product) string { return p.BarcodeIdefix }},
	{"morhipo", func(p *Product) string { return p.BarcodeMorhipo }},
	{"teknosa", func(p *Product) string { return p.BarcodeTeknosa }},
	{"boyner", func(p *Product) string { return p.BarcodeBoyner }},
	{"koctas", func(p *Product) string { return p.BarcodeKoctas }},
	{"evidea", func(p *Product) string { return p.BarcodeEvidea }},
	{"modanisa", func(p *Product) string { return p.BarcodeModanisa }},
	{"flo", func(p *Product) string { return p.BarcodeFlo }},
	{"beymen", func(p *Product) string { return p.BarcodeBeymen }},
	{"lcw", func(p *Product) string { return p.BarcodeLCW }},
	{"vodafone", func(p *Product) string { return p.BarcodeVodafone }},
	{"akakce", func(p *Product) string { return p.BarcodeAkakce }},
}

// BarcodeFields returns the fixed marketplace barcode registry in its
// canonical order.
func BarcodeFields() []BarcodeField {
	return barcodeFields
}

// BarcodeAccessor resolves one marketplace tag. The reserved
// [BarcodeTagAny] tag is not resolvable here; callers dispatching on it
// must iterate [BarcodeFields].
func BarcodeAccessor(tag string) (func(*Product) string, bool) {
	for _, f := range barcodeFields {
		if f.Tag == tag {
			return f.Get, true
		}
	}
	return nil, false
}

var imageFields = []func(*Product) string{
	func(p *Product) string { return p.ImageURL },
	func(p *Product) string { return p.ImageURL2 },
	func(p *Product) string { return p.ImageURL3 },
	func(p *Product) string { return p.ImageURL4 },
	func(p *Product) string { return p.ImageURL5 },
	func(p *Product) string { return p.ImageURL6 },
}

// HasImage reports whether at least one image slot is set, checking the
// main image first and then the indexed slots in order.
func (p *Product) HasImage() bool {
	for _, get := range imageFields {
		if get(p) != "" {
			return true
		}
	}
	return false
}

// HasAnyBarcode reports whether at least one marketplace barcode field
// is non-empty.
func (p *Product) HasAnyBarcode() bool {
	for _, f := range barcodeFields {
		if f.Get(p) != "" {
			return true
		}
	}
	return false
}

// DisplayCategory is the category name shown for the product: the
// linked entity's name when the link is present, the legacy free-text
// name otherwise.
func (p *Product) DisplayCategory() string {
	if p.Category != nil {
		return p.Category.Name
	}
	return p.CategoryName
}

// SortableUpdatedAt is the updated timestamp, substituting the creation
// timestamp when the record was never edited.
func (p *Product) SortableUpdatedAt() time.Time {
	if p.UpdatedAt != nil {
		return *p.UpdatedAt
	}
	return p.CreatedAt
}
