package order_test

import (
	"testing"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("should create a line item with a price snapshot", func(t *testing.T) {
		item, err := order.NewLineItem(
			productID, "Bandeja Paisa", kernel.MoneyFromUnits(20000), 2, nil, "extra crispy")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, "Bandeja Paisa", item.ProductName())
		assert.Equal(t, kernel.MoneyFromUnits(20000), item.UnitPrice())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "extra crispy", item.Note())
		assert.Equal(t, kernel.MoneyFromUnits(40000), item.Subtotal())
	})

	t.Run("should carry customizations", func(t *testing.T) {
		with, err := order.NewCustomization("queso", false)
		require.NoError(t, err)
		without, err := order.NewCustomization("cebolla", true)
		require.NoError(t, err)

		item, err := order.NewLineItem(
			productID, "Arepa", kernel.MoneyFromUnits(3500), 1,
			[]order.Customization{with, without}, "")

		require.NoError(t, err)
		customizations := item.Customizations()
		require.Len(t, customizations, 2)
		assert.Equal(t, "queso", customizations[0].Modifier())
		assert.False(t, customizations[0].Excluded())
		assert.Equal(t, "cebolla", customizations[1].Modifier())
		assert.True(t, customizations[1].Excluded())
	})

	t.Run("should reject quantity below one", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewLineItem(
				productID, "Arepa", kernel.MoneyFromUnits(3500), quantity, nil, "")

			require.Error(t, err)
			assert.Contains(t, err.Error(), "quantity")
		}
	})

	t.Run("should reject a negative unit price", func(t *testing.T) {
		_, err := order.NewLineItem(
			productID, "Arepa", kernel.MoneyFromUnits(-1), 1, nil, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unit price")
	})

	t.Run("should accept a zero unit price", func(t *testing.T) {
		item, err := order.NewLineItem(
			productID, "Agua", kernel.MoneyFromUnits(0), 1, nil, "")

		require.NoError(t, err)
		assert.Equal(t, kernel.Money(0), item.Subtotal())
	})

	t.Run("should reject an empty product name", func(t *testing.T) {
		_, err := order.NewLineItem(
			productID, "", kernel.MoneyFromUnits(3500), 1, nil, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product name")
	})

	t.Run("should reject an unconstructed customization", func(t *testing.T) {
		var c order.Customization

		_, err := order.NewLineItem(
			productID, "Arepa", kernel.MoneyFromUnits(3500), 1, []order.Customization{c}, "")

		require.ErrorIs(t, err, order.ErrCustomizationIsNotConstructed)
	})
}

func TestNewCustomization(t *testing.T) {
	t.Run("should reject an empty modifier", func(t *testing.T) {
		_, err := order.NewCustomization("", false)

		require.Error(t, err)
	})
}
