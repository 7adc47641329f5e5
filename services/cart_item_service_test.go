package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/QuantumLuke/QuantumShopsBE/models"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

func newCartFixture(t *testing.T) (*gorm.DB, *CartService, *CartItemService) {
	t.Helper()
	db := newTestDB(t)
	carts := NewCartService(db)
	products := NewProductService(db, nil)
	items := NewCartItemService(db, carts, products)
	return db, carts, items
}

func TestAddItemToCartSnapshotsPrice(t *testing.T) {
	db, carts, items := newCartFixture(t)
	ctx := context.Background()

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Monitor", "Dell", "199.99", 10)

	require.NoError(t, items.AddItemToCart(ctx, user.ID, product.ID, 2))

	cart, err := carts.GetCartByUserID(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 2, cart.Items[0].Quantity)
	requireDecimalEqual(t, "199.99", cart.Items[0].UnitPrice)
	requireDecimalEqual(t, "399.98", cart.Total)

	// A later catalog price change must not touch the snapshot.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", "249.99").Error)
	require.NoError(t, items.AddItemToCart(ctx, user.ID, product.ID, 1))

	cart, err = carts.GetCartByUserID(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1, "same product must merge into one line")
	require.Equal(t, 3, cart.Items[0].Quantity)
	requireDecimalEqual(t, "199.99", cart.Items[0].UnitPrice)
	requireDecimalEqual(t, "599.97", cart.Total)
}

func TestAddItemToCartCreatesCartLazily(t *testing.T) {
	db, carts, items := newCartFixture(t)

	user := createTestUser(t, db, "lazy@example.com")
	product := createTestProduct(t, db, "Keyboard", "Logitech", "49.50", 5)

	_, err := carts.GetCartByUserID(user.ID)
	require.Equal(t, shoperr.KindNotFound, shoperr.KindOf(err))

	require.NoError(t, items.AddItemToCart(context.Background(), user.ID, product.ID, 1))

	cart, err := carts.GetCartByUserID(user.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, "49.50", cart.Total)
}

func TestAddItemToCartUnknownProduct(t *testing.T) {
	db, _, items := newCartFixture(t)
	user := createTestUser(t, db, "shopper@example.com")

	err := items.AddItemToCart(context.Background(), user.ID, 9999, 1)
	require.Equal(t, shoperr.KindNotFound, shoperr.KindOf(err))
}

func TestUpdateItemQuantityRefreshesPrice(t *testing.T) {
	db, carts, items := newCartFixture(t)
	ctx := context.Background()

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Mouse", "Razer", "80.00", 10)

	require.NoError(t, items.AddItemToCart(ctx, user.ID, product.ID, 1))
	cart, err := carts.GetCartByUserID(user.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", "60.00").Error)

	require.NoError(t, items.UpdateItemQuantity(cart.ID, product.ID, 3))

	cart, err = carts.GetCartByID(cart.ID)
	require.NoError(t, err)
	require.Equal(t, 3, cart.Items[0].Quantity)
	requireDecimalEqual(t, "60.00", cart.Items[0].UnitPrice)
	requireDecimalEqual(t, "180.00", cart.Total)
}

func TestUpdateItemQuantityMissingLine(t *testing.T) {
	db, carts, items := newCartFixture(t)
	ctx := context.Background()

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Mouse", "Razer", "80.00", 10)
	other := createTestProduct(t, db, "Pad", "Razer", "20.00", 10)

	require.NoError(t, items.AddItemToCart(ctx, user.ID, product.ID, 1))
	cart, err := carts.GetCartByUserID(user.ID)
	require.NoError(t, err)

	err = items.UpdateItemQuantity(cart.ID, other.ID, 2)
	require.Equal(t, shoperr.KindNotFound, shoperr.KindOf(err))
}

func TestUpdateItemQuantityProductGoneFromCatalog(t *testing.T) {
	db, carts, items := newCartFixture(t)
	ctx := context.Background()

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Mouse", "Razer", "80.00", 10)

	require.NoError(t, items.AddItemToCart(ctx, user.ID, product.ID, 1))
	cart, err := carts.GetCartByUserID(user.ID)
	require.NoError(t, err)

	// The product leaves the catalog while its line is still in the cart.
	require.NoError(t, db.Delete(&models.Product{}, product.ID).Error)

	err = items.UpdateItemQuantity(cart.ID, product.ID, 3)
	require.Equal(t, shoperr.KindNotFound, shoperr.KindOf(err))
}

func TestRemoveItemRecomputesTotal(t *testing.T) {
	db, carts, items := newCartFixture(t)
	ctx := context.Background()

	user := createTestUser(t, db, "shopper@example.com")
	a := createTestProduct(t, db, "Webcam", "Logitech", "10.00", 10)
	b := createTestProduct(t, db, "Stand", "Generic", "5.00", 10)

	require.NoError(t, items.AddItemToCart(ctx, user.ID, a.ID, 2))
	require.NoError(t, items.AddItemToCart(ctx, user.ID, b.ID, 1))

	cart, err := carts.GetCartByUserID(user.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, "25.00", cart.Total)

	require.NoError(t, items.RemoveItemFromCart(cart.ID, a.ID))

	cart, err = carts.GetCartByID(cart.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	requireDecimalEqual(t, "5.00", cart.Total)
}

func TestRemoveMissingItemFails(t *testing.T) {
	db, carts, items := newCartFixture(t)
	ctx := context.Background()

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Webcam", "Logitech", "10.00", 10)

	require.NoError(t, items.AddItemToCart(ctx, user.ID, product.ID, 1))
	cart, err := carts.GetCartByUserID(user.ID)
	require.NoError(t, err)

	err = items.RemoveItemFromCart(cart.ID, 9999)
	require.Equal(t, shoperr.KindNotFound, shoperr.KindOf(err))

	// Storage unmodified.
	cart, err = carts.GetCartByID(cart.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	requireDecimalEqual(t, "10.00", cart.Total)
}

func TestClearCartKeepsRow(t *testing.T) {
	db, carts, items := newCartFixture(t)
	ctx := context.Background()

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Webcam", "Logitech", "10.00", 10)
	require.NoError(t, items.AddItemToCart(ctx, user.ID, product.ID, 3))

	cart, err := carts.GetCartByUserID(user.ID)
	require.NoError(t, err)

	require.NoError(t, carts.ClearCart(cart.ID))

	cart, err = carts.GetCartByID(cart.ID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
	requireDecimalEqual(t, "0", cart.Total)
}

func TestCartQuantityMustBePositive(t *testing.T) {
	db, _, items := newCartFixture(t)
	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Webcam", "Logitech", "10.00", 10)

	err := items.AddItemToCart(context.Background(), user.ID, product.ID, 0)
	require.Equal(t, shoperr.KindInvalid, shoperr.KindOf(err))
}
