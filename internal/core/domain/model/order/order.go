package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the fulfillment domain. It owns the order's
// lifecycle from placement through kitchen preparation, optional courier
// delivery and settlement.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a valid order type
//   - Must contain at least one line item
//   - Delivery orders carry DeliveryInfo and a deliverable customer;
//     counter orders carry neither DeliveryInfo nor a courier
//   - The subtotal is computed once from line item snapshots at creation
//     and never recomputed
//   - Status transitions follow the single-step state machine of the
//     order's type; role preconditions are checked before state legality
//   - Can only be created through NewOrder or RestoreOrder
//
// Mutating methods collect TransitionRecord entries in a pending history
// buffer; the application layer drains it after the transition commits.
type Order struct {
	id        kernel.UUID
	orderType Type
	status    Status
	customer  Customer
	items     []LineItem
	subtotal  kernel.Money
	delivery  *DeliveryInfo
	courierID *kernel.UUID
	payment   *Payment
	createdAt time.Time
	updatedAt time.Time

	pendingHistory []TransitionRecord

	isConstructed bool
}

// NewOrder creates a new Order in the Placed state. This is the only way to
// place an order, ensuring all business invariants hold from the start.
//
// Delivery orders must supply DeliveryInfo and a customer with phone and
// address; counter orders must not supply DeliveryInfo. The subtotal is
// computed here, once, from the line item price snapshots.
func NewOrder(
	id kernel.UUID,
	orderType Type,
	customer Customer,
	items []LineItem,
	delivery *DeliveryInfo,
) (*Order, error) {
	order := &Order{
		status:        Placed,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}
	order.updatedAt = order.createdAt

	if err := errors.Join(
		order.setID(id),
		order.setType(orderType),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := order.setCustomer(customer); err != nil {
		return nil, err
	}
	if err := order.setDelivery(delivery); err != nil {
		return nil, err
	}

	order.subtotal = computeSubtotal(order.items)

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. It revalidates the
// cross-field invariants so corrupted rows cannot produce an aggregate in an
// impossible state.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	status Status,
	customer Customer,
	items []LineItem,
	subtotal kernel.Money,
	delivery *DeliveryInfo,
	courierID *kernel.UUID,
	payment *Payment,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		subtotal:      subtotal,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setType(orderType),
		order.setItems(items),
		status.Validate(),
		subtotal.MustBeNonNegative("subtotal"),
	); err != nil {
		return nil, err
	}
	order.status = status

	if err := order.setCustomer(customer); err != nil {
		return nil, err
	}
	if err := order.setDelivery(delivery); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cid := *courierID
		order.courierID = &cid
	}
	if err := status.ValidateCourierAssignment(orderType, order.courierID != nil); err != nil {
		return nil, err
	}

	if payment != nil {
		if err := payment.Validate(); err != nil {
			return nil, err
		}
		p := *payment
		order.payment = &p
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Type returns the order's fulfillment channel.
func (o *Order) Type() Type {
	return o.orderType
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Customer returns the customer details captured at checkout.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Subtotal returns the sum of line item subtotals, computed once at creation.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Delivery returns the delivery routing info. Nil on counter orders.
func (o *Order) Delivery() *DeliveryInfo {
	return o.delivery
}

// Courier returns the claiming courier's ID. Nil while unclaimed and always
// nil on counter orders.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Payment returns the settlement payment. Nil until the order is settled.
func (o *Order) Payment() *Payment {
	return o.payment
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last state change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TotalDue returns the amount the customer owes before tip: the subtotal plus
// the delivery fee on delivery orders.
func (o *Order) TotalDue() kernel.Money {
	if o.delivery != nil {
		return o.subtotal.Add(o.delivery.Fee())
	}
	return o.subtotal
}

// PendingHistory returns the transition records produced by mutations since
// the aggregate was loaded. The application layer appends them to the audit
// trail after the transition commits; a failed append is logged, never fatal.
func (o *Order) PendingHistory() []TransitionRecord {
	out := make([]TransitionRecord, len(o.pendingHistory))
	copy(out, o.pendingHistory)
	return out
}

// Advance moves the order to the requested target state on behalf of actor.
//
// Checks run in a fixed sequence:
//  1. the actor's role must be allowed to request the target (ErrForbidden);
//  2. couriers may only touch deliveries they own (ErrNotOwner);
//  3. a target equal to the current state is an idempotent no-op, reported
//     through the changed return without touching the order;
//  4. the target must be the single legal successor for the order's type
//     (ErrInvalidTransition / ErrStaleTransition).
func (o *Order) Advance(target Status, actor Actor, note string) (changed bool, err error) {
	if err := actor.Validate(); err != nil {
		return false, err
	}
	if err := actor.CanRequest(target); err != nil {
		return false, err
	}
	if err := o.checkCourierOwnership(actor); err != nil {
		return false, err
	}

	if target == o.status {
		return false, nil
	}

	newStatus, err := o.status.Advance(target, o.orderType)
	if err != nil {
		return false, err
	}

	o.applyTransition(newStatus, actor.ID(), note)
	return true, nil
}

// Claim assigns the order to a courier and moves it EnRoute. Only a Ready,
// unclaimed delivery can be claimed; anything else fails with
// ErrAlreadyClaimed so racing couriers can drop the order quietly.
//
// The persistence layer enforces the same rule with a conditional update so
// concurrent claims resolve to exactly one winner.
func (o *Order) Claim(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if !o.orderType.RequiresCourier() {
		return fmt.Errorf("%w: %s orders are not claimable", ErrForbidden, o.orderType)
	}
	if o.status != Ready || o.courierID != nil {
		return fmt.Errorf("%w: order %s is %s", ErrAlreadyClaimed, o.id, o.status)
	}

	o.courierID = &courierID
	o.applyTransition(EnRoute, courierID, "")
	return nil
}

// Settle closes the order financially and moves it to Delivered. The order
// must be in the settleable state for its type (Ready for counter orders,
// Arrived for deliveries); otherwise ErrNotSettleable. The payment transition
// and the state transition commit atomically in the persistence layer.
func (o *Order) Settle(payment Payment, actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := actor.CanRequest(Delivered); err != nil {
		return err
	}
	if err := payment.Validate(); err != nil {
		return err
	}
	if o.status != o.orderType.SettleableStatus() {
		return fmt.Errorf("%w: order is %s, %s orders settle at %s",
			ErrNotSettleable, o.status, o.orderType, o.orderType.SettleableStatus())
	}

	p := payment
	o.payment = &p
	o.applyTransition(Delivered, actor.ID(), "")
	return nil
}

// Cancel marks the order Cancelled on behalf of actor. Cancellation is legal
// only while the order is still Placed; afterwards it fails with
// ErrAlreadyProcessing. The persistence layer removes the cancelled order and
// its dependents entirely.
func (o *Order) Cancel(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := actor.CanRequest(Cancelled); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.applyTransition(newStatus, actor.ID(), "")
	return nil
}

func (o *Order) checkCourierOwnership(actor Actor) error {
	if actor.Role() != RoleCourier || o.courierID == nil {
		return nil
	}
	if !o.courierID.IsEqual(actor.ID()) {
		return fmt.Errorf("%w: order %s", ErrNotOwner, o.id)
	}
	return nil
}

func (o *Order) applyTransition(to Status, actorID kernel.UUID, note string) {
	now := time.Now().UTC()
	o.pendingHistory = append(o.pendingHistory, TransitionRecord{
		From:    o.status,
		To:      to,
		ActorID: actorID,
		Note:    note,
		At:      now,
	})
	o.status = to
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if o.orderType == Delivery {
		if err := customer.ValidateForDelivery(); err != nil {
			return err
		}
	} else if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setDelivery(delivery *DeliveryInfo) error {
	if o.orderType.RequiresCourier() {
		if delivery == nil {
			return errs.NewValueIsRequiredError("delivery info")
		}
		if err := delivery.Validate(); err != nil {
			return err
		}
		d := *delivery
		o.delivery = &d
		return nil
	}

	if delivery != nil {
		return errs.NewValueIsInvalidErrorWithCause("delivery info",
			fmt.Errorf("%s orders cannot carry delivery info", o.orderType))
	}
	return nil
}

func computeSubtotal(items []LineItem) kernel.Money {
	var sum kernel.Money
	for _, item := range items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}
