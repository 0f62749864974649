package order

import (
	"errors"
	"fmt"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/guard"
)

// ErrDeliveryInfoIsNotConstructed is returned when a DeliveryInfo was not
// created through the NewDeliveryInfo constructor.
var ErrDeliveryInfoIsNotConstructed = errors.New(
	"DeliveryInfo must be created via NewDeliveryInfo constructor")

// DeliveryInfo carries the routing result and priced delivery fee captured at
// order creation. It exists only on Delivery orders; counter orders cannot
// represent it at all.
type DeliveryInfo struct { //nolint:recvcheck //using for validation
	distanceKm      float64
	durationMinutes int
	fee             kernel.Money
	destination     kernel.GeoPoint
	guard           guard.ConstructorGuard
}

// NewDeliveryInfo creates a validated DeliveryInfo. Distance must be positive,
// the estimated duration non-negative and the fee non-negative; the
// destination must be a properly constructed GeoPoint.
func NewDeliveryInfo(
	distanceKm float64,
	durationMinutes int,
	fee kernel.Money,
	destination kernel.GeoPoint,
) (DeliveryInfo, error) {
	info := DeliveryInfo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		info.setDistanceKm(distanceKm),
		info.setDurationMinutes(durationMinutes),
		info.setFee(fee),
		info.setDestination(destination),
	); err != nil {
		return DeliveryInfo{}, err
	}

	return info, nil
}

// Validate ensures the DeliveryInfo was created through NewDeliveryInfo.
func (d DeliveryInfo) Validate() error {
	return d.guard.Validate(ErrDeliveryInfoIsNotConstructed)
}

// DistanceKm returns the routed distance to the destination in kilometers.
func (d DeliveryInfo) DistanceKm() float64 {
	return d.distanceKm
}

// DurationMinutes returns the estimated travel time in minutes.
func (d DeliveryInfo) DurationMinutes() int {
	return d.durationMinutes
}

// Fee returns the delivery fee priced at order creation.
func (d DeliveryInfo) Fee() kernel.Money {
	return d.fee
}

// Destination returns the resolved destination coordinates.
func (d DeliveryInfo) Destination() kernel.GeoPoint {
	return d.destination
}

func (d *DeliveryInfo) setDistanceKm(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%g is not greater than 0", distanceKm))
	}
	d.distanceKm = distanceKm
	return nil
}

func (d *DeliveryInfo) setDurationMinutes(durationMinutes int) error {
	if durationMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("duration",
			fmt.Errorf("%d is negative", durationMinutes))
	}
	d.durationMinutes = durationMinutes
	return nil
}

func (d *DeliveryInfo) setFee(fee kernel.Money) error {
	if err := fee.MustBeNonNegative("delivery fee"); err != nil {
		return err
	}
	d.fee = fee
	return nil
}

func (d *DeliveryInfo) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	d.destination = destination
	return nil
}
