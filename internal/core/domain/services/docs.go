// Package services contains stateless domain services that operate across
// aggregates and configuration: the PricingEngine prices delivery fees
// against a tariff and computes tips and change for settlement.
package services
