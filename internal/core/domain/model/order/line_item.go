package order

import (
	"errors"
	"fmt"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through the NewLineItem constructor.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

	// ErrCustomizationIsNotConstructed is returned when a Customization was not
	// created through the NewCustomization constructor.
	ErrCustomizationIsNotConstructed = errors.New(
		"Customization must be created via NewCustomization constructor")
)

// Customization records a single modifier applied to a line item: either an
// extra ingredient included or a default one excluded.
type Customization struct { //nolint:recvcheck //using for validation
	modifier string
	excluded bool
	guard    guard.ConstructorGuard
}

// NewCustomization creates a Customization for the named modifier.
// excluded = true means "without <modifier>", false means "with <modifier>".
func NewCustomization(modifier string, excluded bool) (Customization, error) {
	if modifier == "" {
		return Customization{}, errs.NewValueIsRequiredError("customization modifier")
	}
	return Customization{
		modifier: modifier,
		excluded: excluded,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Customization was created through NewCustomization.
func (c Customization) Validate() error {
	return c.guard.Validate(ErrCustomizationIsNotConstructed)
}

// Modifier returns the modifier name.
func (c Customization) Modifier() string {
	return c.modifier
}

// Excluded reports whether the modifier is removed rather than added.
func (c Customization) Excluded() bool {
	return c.excluded
}

// LineItem is one product position on the order. The unit price is a snapshot
// taken from the catalog at order creation and is never re-read: catalog
// prices may change independently of orders already placed.
//
// Line items are immutable after order creation.
type LineItem struct { //nolint:recvcheck //using for validation
	productID      kernel.UUID
	productName    string
	unitPrice      kernel.Money
	quantity       int
	customizations []Customization
	note           string
	guard          guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem.
// Quantity must be at least 1 and the unit price snapshot must be non-negative.
func NewLineItem(
	productID kernel.UUID,
	productName string,
	unitPrice kernel.Money,
	quantity int,
	customizations []Customization,
	note string,
) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
		item.setCustomizations(customizations),
	); err != nil {
		return LineItem{}, err
	}
	item.note = note

	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the catalog reference of the product.
func (i LineItem) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name snapshot.
func (i LineItem) ProductName() string {
	return i.productName
}

// UnitPrice returns the price snapshot taken at order creation.
func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i LineItem) Quantity() int {
	return i.quantity
}

// Customizations returns a copy of the item's customization set.
func (i LineItem) Customizations() []Customization {
	out := make([]Customization, len(i.customizations))
	copy(out, i.customizations)
	return out
}

// Note returns the free-text preparation note for this item.
func (i LineItem) Note() string {
	return i.note
}

// Subtotal returns unit price multiplied by quantity.
func (i LineItem) Subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

func (i *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setProductName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.productName = name
	return nil
}

func (i *LineItem) setUnitPrice(price kernel.Money) error {
	if err := price.MustBeNonNegative("unit price"); err != nil {
		return err
	}
	i.unitPrice = price
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setCustomizations(customizations []Customization) error {
	for _, c := range customizations {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	i.customizations = make([]Customization, len(customizations))
	copy(i.customizations, customizations)
	return nil
}
