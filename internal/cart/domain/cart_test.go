package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kaosHitam(qty int) LineItem {
	return LineItem{
		ProductID: "p1",
		Name:      "Kaos Sablon Hitam",
		UnitPrice: 50000,
		ImageURL:  "https://cdn.example.com/kaos-hitam.jpg",
		Size:      "M",
		Color:     "Black",
		Quantity:  qty,
	}
}

func TestAddItemMergesSameVariant(t *testing.T) {
	var cart Cart

	cart.AddItem(kaosHitam(1))
	cart.AddItem(kaosHitam(2))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestAddItemKeepsFirstAddSnapshot(t *testing.T) {
	var cart Cart

	cart.AddItem(kaosHitam(1))

	// Same variant added later with a changed price and name; the
	// existing line's snapshot must win.
	repriced := kaosHitam(2)
	repriced.Name = "Kaos Sablon Hitam (Baru)"
	repriced.UnitPrice = 60000
	repriced.ImageURL = "https://cdn.example.com/other.jpg"
	cart.AddItem(repriced)

	require.Len(t, cart.Items, 1)
	line := cart.Items[0]
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, "Kaos Sablon Hitam", line.Name)
	assert.Equal(t, int64(50000), line.UnitPrice)
	assert.Equal(t, "https://cdn.example.com/kaos-hitam.jpg", line.ImageURL)
}

func TestAddItemDifferentVariantIsNewLine(t *testing.T) {
	var cart Cart

	cart.AddItem(kaosHitam(1))

	sizeL := kaosHitam(1)
	sizeL.Size = "L"
	cart.AddItem(sizeL)

	colorWhite := kaosHitam(1)
	colorWhite.Color = "White"
	cart.AddItem(colorWhite)

	assert.Len(t, cart.Items, 3)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	var cart Cart

	for _, id := range []string{"p3", "p1", "p2"} {
		cart.AddItem(LineItem{ProductID: id, Name: id, UnitPrice: 1000, Quantity: 1})
	}

	require.Len(t, cart.Items, 3)
	assert.Equal(t, "p3", cart.Items[0].ProductID)
	assert.Equal(t, "p1", cart.Items[1].ProductID)
	assert.Equal(t, "p2", cart.Items[2].ProductID)
}

func TestEmptyVariantStringsAreALine(t *testing.T) {
	var cart Cart

	noVariant := LineItem{ProductID: "p9", Name: "Totebag", UnitPrice: 35000, Quantity: 1}
	cart.AddItem(noVariant)
	cart.AddItem(noVariant)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	var cart Cart
	cart.AddItem(kaosHitam(3))

	for _, q := range []int{0, -1, -100} {
		cart.UpdateQuantity("p1", "M", "Black", q)
		require.Len(t, cart.Items, 1, "clamp must never remove the line")
		assert.Equal(t, 1, cart.Items[0].Quantity)
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	var cart Cart
	cart.AddItem(kaosHitam(1))

	cart.UpdateQuantity("p1", "M", "Black", 7)

	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestUpdateQuantityMissingLineIsNoop(t *testing.T) {
	var cart Cart
	cart.AddItem(kaosHitam(2))

	cart.UpdateQuantity("p1", "XL", "Black", 5)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	var cart Cart
	cart.AddItem(kaosHitam(1))

	sizeL := kaosHitam(1)
	sizeL.Size = "L"
	cart.AddItem(sizeL)

	cart.RemoveItem("p1", "M", "Black")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "L", cart.Items[0].Size)

	// Removing an absent line is a no-op.
	cart.RemoveItem("p1", "M", "Black")
	assert.Len(t, cart.Items, 1)
}

func TestDerivedTotals(t *testing.T) {
	var cart Cart
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, int64(0), cart.TotalPrice())

	cart.AddItem(kaosHitam(2))
	hoodie := LineItem{ProductID: "p2", Name: "Hoodie", UnitPrice: 120000, Quantity: 1}
	cart.AddItem(hoodie)

	assert.Equal(t, 3, cart.TotalItems())
	assert.Equal(t, int64(2*50000+120000), cart.TotalPrice())
}

func TestClearIsTotal(t *testing.T) {
	var cart Cart
	cart.AddItem(kaosHitam(5))
	cart.AddItem(LineItem{ProductID: "p2", Name: "Hoodie", UnitPrice: 120000, Quantity: 2})

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, int64(0), cart.TotalPrice())
}

// Mirrors the storefront flow: repeat adds of one variant merge, a new
// size opens a second line.
func TestAddUpdateScenario(t *testing.T) {
	var cart Cart

	cart.AddItem(LineItem{ProductID: "p1", Size: "M", Color: "Black", UnitPrice: 50000, Quantity: 1})
	cart.AddItem(LineItem{ProductID: "p1", Size: "M", Color: "Black", UnitPrice: 50000, Quantity: 2})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, int64(150000), cart.TotalPrice())

	cart.AddItem(LineItem{ProductID: "p1", Size: "L", Color: "Black", UnitPrice: 50000, Quantity: 1})

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 4, cart.TotalItems())
	assert.Equal(t, int64(200000), cart.TotalPrice())
}

func TestCartJSONRoundTrip(t *testing.T) {
	var cart Cart
	cart.AddItem(kaosHitam(2))
	cart.AddItem(LineItem{ProductID: "p2", Name: "Hoodie", UnitPrice: 120000, Size: "XL", Quantity: 1})

	data, err := json.Marshal(&cart)
	require.NoError(t, err)

	var restored Cart
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, cart.Items, restored.Items)
}

func TestEmptyCartJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(&Cart{})
	require.NoError(t, err)

	var restored Cart
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.True(t, restored.IsEmpty())
}
