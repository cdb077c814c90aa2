// Package services contains domain services: logic that spans several
// aggregates and belongs to none of them.
//
// CapacityMatcher filters the trucks of a warehouse down to the ones that can
// take a load. It is pure: it never changes a truck and never reserves one.
// Reservation happens in the workflows, under the truck row lock.
package services
