package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/QuantumLuke/QuantumShopsBE/models"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

func TestAddProductCreatesCategoryByName(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db, nil)
	categories := NewCategoryService(db)

	product, err := products.AddProduct(AddProductRequest{
		Name:      "Thinkpad",
		Brand:     "Lenovo",
		Price:     decimal.RequireFromString("999.00"),
		Inventory: 4,
		Category:  "Laptops",
	})
	require.NoError(t, err)

	// Round-trip: the category created through the product add is
	// fetchable by name.
	category, err := categories.GetCategoryByName("Laptops")
	require.NoError(t, err)
	require.Equal(t, "Laptops", category.Name)
	require.Equal(t, category.ID, product.CategoryID)

	// A second product with the same category must reuse the row.
	_, err = products.AddProduct(AddProductRequest{
		Name:      "XPS",
		Brand:     "Dell",
		Price:     decimal.RequireFromString("1099.00"),
		Inventory: 2,
		Category:  "Laptops",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Where("name = ?", "Laptops").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAddProductDuplicateNameAndBrand(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db, nil)

	req := AddProductRequest{
		Name:      "Thinkpad",
		Brand:     "Lenovo",
		Price:     decimal.RequireFromString("999.00"),
		Inventory: 4,
		Category:  "Laptops",
	}
	_, err := products.AddProduct(req)
	require.NoError(t, err)

	_, err = products.AddProduct(req)
	require.Equal(t, shoperr.KindAlreadyExists, shoperr.KindOf(err))

	// Same name under another brand is allowed.
	req.Brand = "Refurbco"
	_, err = products.AddProduct(req)
	require.NoError(t, err)
}

func TestAddProductDuplicateNameAndBrandRace(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db, nil)

	seed := createTestProduct(t, db, "Seed", "Lenovo", "1.00", 1)

	// A concurrent insert of the same (name, brand) lands between the
	// duplicate check and ours; the unique index turns it into a
	// conflict instead of a 500.
	err := db.Callback().Create().Before("gorm:create").
		Register("racing_product", func(tx *gorm.DB) {
			if _, ok := tx.Statement.Dest.(*models.Product); !ok {
				return
			}
			_, execErr := tx.Statement.ConnPool.ExecContext(context.Background(),
				"INSERT INTO products (name, brand, price, inventory, category_id) VALUES (?, ?, ?, ?, ?)",
				"Thinkpad", "Lenovo", "999.00", 4, seed.CategoryID)
			require.NoError(t, execErr)
		})
	require.NoError(t, err)

	_, err = products.AddProduct(AddProductRequest{
		Name:      "Thinkpad",
		Brand:     "Lenovo",
		Price:     decimal.RequireFromString("999.00"),
		Inventory: 4,
		Category:  "Electronics",
	})
	require.Equal(t, shoperr.KindAlreadyExists, shoperr.KindOf(err))
}

func TestGetProductByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db, nil)

	_, err := products.GetProductByID(context.Background(), 55)
	require.Equal(t, shoperr.KindNotFound, shoperr.KindOf(err))
}

func TestUpdateProductResolvesCategory(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db, nil)
	ctx := context.Background()

	created, err := products.AddProduct(AddProductRequest{
		Name:      "Thinkpad",
		Brand:     "Lenovo",
		Price:     decimal.RequireFromString("999.00"),
		Inventory: 4,
		Category:  "Laptops",
	})
	require.NoError(t, err)

	updated, err := products.UpdateProduct(ctx, created.ID, UpdateProductRequest{
		Name:      "Thinkpad X1",
		Brand:     "Lenovo",
		Price:     decimal.RequireFromString("1299.00"),
		Inventory: 6,
		Category:  "Ultrabooks",
	})
	require.NoError(t, err)
	require.Equal(t, "Thinkpad X1", updated.Name)
	require.Equal(t, 6, updated.Inventory)
	requireDecimalEqual(t, "1299.00", updated.Price)
	require.Equal(t, "Ultrabooks", updated.Category.Name)
}

func TestDeleteProductCascadesImages(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db, nil)
	ctx := context.Background()

	product := createTestProduct(t, db, "Thinkpad", "Lenovo", "999.00", 4)
	image := models.Image{Filename: "front.png", FileType: "image/png", Data: []byte{1, 2}, ProductID: product.ID}
	require.NoError(t, db.Create(&image).Error)

	require.NoError(t, products.DeleteProductByID(ctx, product.ID))

	var imageCount int64
	require.NoError(t, db.Model(&models.Image{}).Where("product_id = ?", product.ID).Count(&imageCount).Error)
	require.Zero(t, imageCount)

	err := products.DeleteProductByID(ctx, product.ID)
	require.Equal(t, shoperr.KindNotFound, shoperr.KindOf(err))
}

func TestProductSearch(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db, nil)

	add := func(name, brand, category string) {
		t.Helper()
		_, err := products.AddProduct(AddProductRequest{
			Name:      name,
			Brand:     brand,
			Price:     decimal.RequireFromString("10.00"),
			Inventory: 1,
			Category:  category,
		})
		require.NoError(t, err)
	}
	add("Thinkpad", "Lenovo", "Laptops")
	add("Yoga", "Lenovo", "Laptops")
	add("XPS", "Dell", "Laptops")
	add("Monitor", "Dell", "Displays")

	byCategory, err := products.GetProductsByCategory("Laptops")
	require.NoError(t, err)
	require.Len(t, byCategory, 3)

	byBrand, err := products.GetProductsByBrand("Lenovo")
	require.NoError(t, err)
	require.Len(t, byBrand, 2)

	byName, err := products.GetProductsByName("XPS")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	require.Equal(t, "Dell", byName[0].Brand)

	byCategoryAndBrand, err := products.GetProductsByCategoryAndBrand("Laptops", "Dell")
	require.NoError(t, err)
	require.Len(t, byCategoryAndBrand, 1)

	byBrandAndName, err := products.GetProductsByBrandAndName("Lenovo", "Yoga")
	require.NoError(t, err)
	require.Len(t, byBrandAndName, 1)

	count, err := products.CountProductsByBrandAndName("Dell", "Monitor")
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	all, err := products.GetAllProducts()
	require.NoError(t, err)
	require.Len(t, all, 4)
}
