package payload

// RawProduct is the decoded shape of one search result entry. Every field is
// optional on the wire; the normalizer decodes into it with weak typing.
type RawProduct struct {
	Code            string          `mapstructure:"code"`
	Name            string          `mapstructure:"name"`
	Description     string          `mapstructure:"description"`
	Summary         string          `mapstructure:"summary"`
	Price           *Money          `mapstructure:"price"`
	DiscountedPrice *Money          `mapstructure:"discountedPrice"`
	DiscountRate    float64         `mapstructure:"discountRate"`
	Images          []Image         `mapstructure:"images"`
	Categories      []Category      `mapstructure:"categories"`
	Brand           *Brand          `mapstructure:"brand"`
	Stock           *Stock          `mapstructure:"stock"`
	AverageRating   float64         `mapstructure:"averageRating"`
	NumberOfReviews int             `mapstructure:"numberOfReviews"`
	VariantOptions  []VariantOption `mapstructure:"variantOptions"`
	CreationTime    string          `mapstructure:"creationTime"`
	ModifiedTime    string          `mapstructure:"modifiedTime"`
}

type Money struct {
	Value          float64 `mapstructure:"value"`
	CurrencyISO    string  `mapstructure:"currencyIso"`
	FormattedValue string  `mapstructure:"formattedValue"`
}

// Image types used by the search API.
const (
	ImagePrimary = "PRIMARY"
	ImageGallery = "GALLERY"
)

type Image struct {
	ImageType string `mapstructure:"imageType"`
	Format    string `mapstructure:"format"`
	URL       string `mapstructure:"url"`
}

type Stock struct {
	StockLevelStatus string `mapstructure:"stockLevelStatus"`
	StockLevel       int    `mapstructure:"stockLevel"`
}

// InStock treats inStock and lowStock as available, and any positive level.
func (s *Stock) InStock() bool {
	if s == nil {
		return false
	}
	switch s.StockLevelStatus {
	case "inStock", "lowStock":
		return true
	}
	return s.StockLevel > 0
}

type VariantOption struct {
	Code       string             `mapstructure:"code"`
	Qualifiers []VariantQualifier `mapstructure:"variantOptionQualifiers"`
}

type VariantQualifier struct {
	Qualifier string `mapstructure:"qualifier"`
	Name      string `mapstructure:"name"`
	Value     string `mapstructure:"value"`
}
