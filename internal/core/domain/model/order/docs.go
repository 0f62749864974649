// Package order contains the Order aggregate and its value objects: the
// lifecycle state machine, line items with price snapshots, customer details,
// delivery routing info, payments and the transition audit trail.
//
// The aggregate enforces single-step transitions whose legality depends on
// the order type, checks role preconditions before state legality, and keeps
// claim, settlement and cancellation rules next to the state they protect.
package order
