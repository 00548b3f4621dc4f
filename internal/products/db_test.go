package products

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aselbek/bazar-backend/pkg/db/models"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  first_name TEXT NOT NULL DEFAULT '',
  last_name TEXT NOT NULL DEFAULT '',
  age INTEGER,
  phone_number TEXT,
  status TEXT NOT NULL DEFAULT 'simple',
  is_active INTEGER NOT NULL DEFAULT 1,
  date_registered DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS categories (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  category_name TEXT NOT NULL UNIQUE,
  category_image TEXT NOT NULL DEFAULT ''
);`,
		`CREATE TABLE IF NOT EXISTS sub_categories (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  category_id INTEGER NOT NULL,
  subcategory_name TEXT NOT NULL UNIQUE
);`,
		`CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  category_id INTEGER NOT NULL,
  sub_category_id INTEGER NOT NULL,
  product_name TEXT NOT NULL,
  product_price INTEGER NOT NULL,
  product_description TEXT NOT NULL DEFAULT '',
  type_status INTEGER NOT NULL DEFAULT 0,
  article_number INTEGER NOT NULL UNIQUE,
  product_video TEXT NOT NULL DEFAULT '',
  create_date DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS product_images (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id INTEGER NOT NULL,
  product_image TEXT NOT NULL DEFAULT ''
);`,
		`CREATE TABLE IF NOT EXISTS reviews (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  product_id INTEGER NOT NULL,
  rating INTEGER NOT NULL,
  comment TEXT NOT NULL DEFAULT '',
  create_date DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS translations (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  entity_type TEXT NOT NULL,
  entity_id INTEGER NOT NULL,
  locale TEXT NOT NULL,
  field TEXT NOT NULL,
  value TEXT NOT NULL,
  UNIQUE (entity_type, entity_id, locale, field)
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func mustCreateUser(t *testing.T, db *gorm.DB, firstName, lastName string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New(),
		Username:     fmt.Sprintf("user_%s", uuid.NewString()[:8]),
		Email:        "reviewer@example.com",
		PasswordHash: "hash",
		FirstName:    firstName,
		LastName:     lastName,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func mustCreateCatalog(t *testing.T, db *gorm.DB, categoryName, subCategoryName string) (*models.Category, *models.SubCategory) {
	t.Helper()
	category := &models.Category{CategoryName: categoryName, CategoryImage: categoryName + ".png"}
	require.NoError(t, db.Create(category).Error)
	subCategory := &models.SubCategory{CategoryID: category.ID, SubcategoryName: subCategoryName}
	require.NoError(t, db.Create(subCategory).Error)
	return category, subCategory
}

var articleSeq int64 = 100000

func mustCreateProduct(t *testing.T, db *gorm.DB, sub *models.SubCategory, name string, price int64) *models.Product {
	t.Helper()
	articleSeq++
	product := &models.Product{
		CategoryID:         sub.CategoryID,
		SubCategoryID:      sub.ID,
		ProductName:        name,
		ProductPrice:       price,
		ProductDescription: name + " description",
		TypeStatus:         true,
		ArticleNumber:      articleSeq,
		CreateDate:         time.Now().UTC(),
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
