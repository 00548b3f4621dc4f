package products

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/aselbek/bazar-backend/pkg/db/models"
)

// Aggregates computed per product at read time; ratings are never stored.
const (
	avgRatingExpr   = "(SELECT COALESCE(AVG(r.rating), 0) FROM reviews r WHERE r.product_id = products.id)"
	reviewCountExpr = "(SELECT COUNT(*) FROM reviews r WHERE r.product_id = products.id)"
)

// Repository encapsulates product persistence and the listing query.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a products repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type listRecord struct {
	ID            int64   `gorm:"column:id"`
	ProductName   string  `gorm:"column:product_name"`
	ProductPrice  int64   `gorm:"column:product_price"`
	TypeStatus    bool    `gorm:"column:type_status"`
	ArticleNumber int64   `gorm:"column:article_number"`
	AvgRating     float64 `gorm:"column:avg_rating"`
	ReviewCount   int64   `gorm:"column:review_count"`
}

// List runs the filtered, searched, ordered and paged listing query and
// returns the matching rows plus the unpaged total.
func (r *Repository) List(ctx context.Context, params ListParams) ([]listRecord, map[int64][]string, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Product{})
	base = applyFilters(base, params)

	var count int64
	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, nil, 0, err
	}

	page := params.Page.Normalize()
	query := base.Session(&gorm.Session{}).
		Select(strings.Join([]string{
			"products.id",
			"products.product_name",
			"products.product_price",
			"products.type_status",
			"products.article_number",
			avgRatingExpr + " AS avg_rating",
			reviewCountExpr + " AS review_count",
		}, ", ")).
		Order(params.Ordering.OrderClause()).
		Limit(page.Limit).
		Offset(params.Page.Offset())

	var records []listRecord
	if err := query.Scan(&records).Error; err != nil {
		return nil, nil, 0, err
	}

	ids := make([]int64, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	images, err := r.imagesByProduct(ctx, ids)
	if err != nil {
		return nil, nil, 0, err
	}
	return records, images, count, nil
}

// FindDetail loads a product with its images, subcategory chain, and reviews
// newest-first including the reviewer.
func (r *Repository) FindDetail(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("create_date DESC, id DESC")
		}).
		Preload("Reviews.User").
		Preload("SubCategory.Category").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByID loads the bare product row.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListBySubCategory returns list rows for the subcategory detail embedding,
// in insertion order.
func (r *Repository) ListBySubCategory(ctx context.Context, subCategoryID int64) ([]listRecord, map[int64][]string, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{}).
		Select(strings.Join([]string{
			"products.id",
			"products.product_name",
			"products.product_price",
			"products.type_status",
			"products.article_number",
			avgRatingExpr + " AS avg_rating",
			reviewCountExpr + " AS review_count",
		}, ", ")).
		Where("sub_category_id = ?", subCategoryID).
		Order("id ASC")

	var records []listRecord
	if err := query.Scan(&records).Error; err != nil {
		return nil, nil, err
	}

	ids := make([]int64, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	images, err := r.imagesByProduct(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	return records, images, nil
}

func (r *Repository) imagesByProduct(ctx context.Context, productIDs []int64) (map[int64][]string, error) {
	grouped := make(map[int64][]string)
	if len(productIDs) == 0 {
		return grouped, nil
	}

	var rows []models.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		grouped[row.ProductID] = append(grouped[row.ProductID], row.ProductImage)
	}
	return grouped, nil
}

func applyFilters(query *gorm.DB, params ListParams) *gorm.DB {
	if params.SubCategory != nil {
		query = query.Where("sub_category_id = ?", *params.SubCategory)
	}
	if params.PriceGTE != nil {
		query = query.Where("product_price >= ?", *params.PriceGTE)
	}
	if params.PriceLT != nil {
		query = query.Where("product_price < ?", *params.PriceLT)
	}

	search := strings.TrimSpace(params.Search)
	if search != "" {
		// substring match on the name, prefix match on the article number;
		// % and _ in the query are literals, not wildcards
		namePattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		articlePattern := escapeLike(search) + "%"
		query = query.Where(
			`LOWER(product_name) LIKE ? ESCAPE '\' OR CAST(article_number AS TEXT) LIKE ? ESCAPE '\'`,
			namePattern, articlePattern,
		)
	}
	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
