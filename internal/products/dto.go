package products

import (
	"github.com/shopspring/decimal"

	"github.com/aselbek/bazar-backend/pkg/enums"
	"github.com/aselbek/bazar-backend/pkg/pagination"
)

const dateLayout = "02-01-2006"

// ListParams collects the filter, search, ordering and paging inputs of the
// product listing. Filters are AND-combined; the price band is half-open.
type ListParams struct {
	SubCategory *int64
	PriceGTE    *int64
	PriceLT     *int64
	Search      string
	Ordering    enums.ProductOrdering
	Page        pagination.Params
}

// ListEntry is one row of the product listing.
type ListEntry struct {
	ID            int64    `json:"id"`
	ProductName   string   `json:"product_name"`
	ProductPrice  int64    `json:"product_price"`
	TypeStatus    bool     `json:"type_status"`
	ArticleNumber int64    `json:"article_number"`
	AvgRating     float64  `json:"avg_rating"`
	ReviewCount   int64    `json:"review_count"`
	Images        []string `json:"images"`
}

// ListResult pairs the page of entries with pagination metadata.
type ListResult struct {
	Items      []ListEntry     `json:"items"`
	Pagination pagination.Page `json:"pagination"`
}

// SubCategoryRef is the subcategory embedding inside the product detail.
type SubCategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryRef is the category embedding, resolved through the subcategory.
type CategoryRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ReviewView renders a review inside the product detail; only the reviewer's
// name is exposed.
type ReviewView struct {
	ID         int64      `json:"id"`
	User       ReviewUser `json:"user"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment"`
	CreateDate string     `json:"create_date"`
}

// ReviewUser is the reviewer projection.
type ReviewUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Detail is the full product document.
type Detail struct {
	ID                 int64          `json:"id"`
	ProductName        string         `json:"product_name"`
	ProductPrice       int64          `json:"product_price"`
	ProductDescription string         `json:"product_description"`
	TypeStatus         bool           `json:"type_status"`
	ArticleNumber      int64          `json:"article_number"`
	ProductVideo       string         `json:"product_video"`
	CreateDate         string         `json:"create_date"`
	SubCategory        SubCategoryRef `json:"sub_category"`
	Category           CategoryRef    `json:"category"`
	AvgRating          float64        `json:"avg_rating"`
	ReviewCount        int64          `json:"review_count"`
	Images             []string       `json:"images"`
	Reviews            []ReviewView   `json:"reviews"`
}

// roundRating rounds a mean rating to one decimal place.
func roundRating(sum, count int64) float64 {
	if count == 0 {
		return 0
	}
	avg := decimal.NewFromInt(sum).Div(decimal.NewFromInt(count))
	value, _ := avg.Round(1).Float64()
	return value
}

func roundRatingFloat(avg float64) float64 {
	value, _ := decimal.NewFromFloat(avg).Round(1).Float64()
	return value
}
