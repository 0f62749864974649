package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/guard"
)

var (
	// ErrOutOfCoverage is returned when the routed distance to a delivery
	// destination exceeds the configured coverage radius. Orders to such
	// destinations are never created.
	ErrOutOfCoverage = errors.New("destination is outside the delivery coverage area")

	// ErrTariffIsNotConstructed is returned when a Tariff was not created
	// through the NewTariff constructor.
	ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff constructor")
)

// Tariff is the delivery pricing policy: a flat base fee that covers the base
// distance band, a per-kilometer charge for distance beyond it, and the
// coverage radius past which delivery is refused. Tariffs come from
// configuration and never change during an order's lifetime; the fee is
// priced once at order creation.
type Tariff struct {
	baseFee          kernel.Money
	baseDistanceKm   float64
	excessPerKm      kernel.Money
	coverageRadiusKm float64
	guard            guard.ConstructorGuard
}

// NewTariff creates a validated Tariff. Fees must be non-negative, distances
// positive, and the coverage radius must be at least the base distance band.
func NewTariff(
	baseFee kernel.Money,
	baseDistanceKm float64,
	excessPerKm kernel.Money,
	coverageRadiusKm float64,
) (Tariff, error) {
	if err := errors.Join(
		baseFee.MustBeNonNegative("base fee"),
		excessPerKm.MustBeNonNegative("excess fee per km"),
	); err != nil {
		return Tariff{}, err
	}
	if baseDistanceKm <= 0 {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause("base distance",
			fmt.Errorf("%g is not greater than 0", baseDistanceKm))
	}
	if coverageRadiusKm < baseDistanceKm {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause("coverage radius",
			fmt.Errorf("%g is less than the base distance %g", coverageRadiusKm, baseDistanceKm))
	}

	return Tariff{
		baseFee:          baseFee,
		baseDistanceKm:   baseDistanceKm,
		excessPerKm:      excessPerKm,
		coverageRadiusKm: coverageRadiusKm,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Tariff was created through NewTariff.
func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// BaseFee returns the flat fee covering the base distance band.
func (t Tariff) BaseFee() kernel.Money {
	return t.baseFee
}

// BaseDistanceKm returns the distance band covered by the base fee.
func (t Tariff) BaseDistanceKm() float64 {
	return t.baseDistanceKm
}

// ExcessPerKm returns the charge per started kilometer beyond the base band.
func (t Tariff) ExcessPerKm() kernel.Money {
	return t.excessPerKm
}

// CoverageRadiusKm returns the maximum routed distance served at all.
func (t Tariff) CoverageRadiusKm() float64 {
	return t.coverageRadiusKm
}

// DeliveryFeeQuote breaks a priced delivery fee into its components so the
// checkout surface can display how the fee was derived.
type DeliveryFeeQuote struct {
	BaseFee          kernel.Money
	ExcessFee        kernel.Money
	TotalFee         kernel.Money
	BaseDistanceKm   float64
	ExcessDistanceKm float64
}

// TipMode selects how the tip amount of a settlement is derived.
type TipMode int

const (
	// TipNone means no tip.
	TipNone TipMode = iota

	// TipPercent derives the tip as a percentage of the order subtotal,
	// rounded half up to a whole currency unit.
	TipPercent

	// TipManual uses an explicit tip amount entered by the cashier.
	TipManual
)

// PricingEngine is a domain service that prices delivery fees against a
// tariff and computes the monetary pieces of a settlement: tip, total and
// change due. All arithmetic is integer money; nothing here touches storage.
type PricingEngine struct {
	tariff Tariff
}

// NewPricingEngine creates a PricingEngine over a validated tariff.
func NewPricingEngine(tariff Tariff) (PricingEngine, error) {
	if err := tariff.Validate(); err != nil {
		return PricingEngine{}, err
	}
	return PricingEngine{tariff: tariff}, nil
}

// Tariff returns the pricing policy the engine operates on.
func (e PricingEngine) Tariff() Tariff {
	return e.tariff
}

// DeliveryFee prices a delivery over the routed distance.
//
// Distance within the base band costs the flat base fee. Distance beyond it
// is charged per started kilometer at the excess rate. A distance beyond the
// coverage radius fails with ErrOutOfCoverage and no fee is produced.
func (e PricingEngine) DeliveryFee(distanceKm float64) (DeliveryFeeQuote, error) {
	if distanceKm <= 0 {
		return DeliveryFeeQuote{}, errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%g is not greater than 0", distanceKm))
	}
	if distanceKm > e.tariff.coverageRadiusKm {
		return DeliveryFeeQuote{}, fmt.Errorf("%w: %gkm exceeds the %gkm radius",
			ErrOutOfCoverage, distanceKm, e.tariff.coverageRadiusKm)
	}

	quote := DeliveryFeeQuote{
		BaseFee:        e.tariff.baseFee,
		TotalFee:       e.tariff.baseFee,
		BaseDistanceKm: e.tariff.baseDistanceKm,
	}

	if distanceKm > e.tariff.baseDistanceKm {
		quote.ExcessDistanceKm = distanceKm - e.tariff.baseDistanceKm
		billedKm := int(math.Ceil(quote.ExcessDistanceKm))
		quote.ExcessFee = e.tariff.excessPerKm.MulInt(billedKm)
		quote.TotalFee = quote.BaseFee.Add(quote.ExcessFee)
	}

	return quote, nil
}

// Tip derives the tip amount for a settlement.
//
// TipPercent computes percent of the subtotal, rounded half up; any
// non-negative percentage is accepted, including above 100. TipManual passes
// the given amount through; it must be non-negative. TipNone ignores both
// inputs and yields zero.
func (e PricingEngine) Tip(
	subtotal kernel.Money,
	mode TipMode,
	percent int,
	amount kernel.Money,
) (kernel.Money, error) {
	switch mode {
	case TipNone:
		return 0, nil
	case TipPercent:
		if percent < 0 {
			return 0, errs.NewValueIsInvalidErrorWithCause("tip percent",
				fmt.Errorf("%d is negative", percent))
		}
		units := (subtotal.Units()*int64(percent) + 50) / 100
		return kernel.MoneyFromUnits(units), nil
	case TipManual:
		if err := amount.MustBeNonNegative("tip"); err != nil {
			return 0, err
		}
		return amount, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("tip mode",
			fmt.Errorf("%d is not a valid tip mode", mode))
	}
}

// Change computes the change due for a payment.
//
// Cash payments require the amount tendered to cover the total; anything
// short fails with order.ErrInsufficientPayment and settlement is blocked.
// Non-cash payments charge exactly and always produce zero change.
func (e PricingEngine) Change(
	method order.PaymentMethod,
	total kernel.Money,
	tendered kernel.Money,
) (kernel.Money, error) {
	if method != order.Cash {
		return 0, nil
	}
	if tendered < total {
		return 0, fmt.Errorf("%w: tendered %s, due %s",
			order.ErrInsufficientPayment, tendered, total)
	}
	return tendered.Sub(total), nil
}
