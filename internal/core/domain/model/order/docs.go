// Package order provides the Order aggregate and its status lifecycle.
//
// The package includes:
//   - Order: a placed request for a quantity of one product, optionally owned by a customer
//   - Status: the closed three-value enumeration pendiente, en proceso, completado
//   - TransitionPolicy: the rule deciding which status changes are accepted
//
// Key business rules:
//   - An order references exactly one product and at most one customer
//   - Quantity must be positive
//   - A new order starts in pendiente; its creation timestamp is set once, in UTC
//   - Status is the only field that changes after creation
//   - Under the default Permissive policy every status is reachable from every other;
//     ForwardOnly only accepts pendiente -> en proceso -> completado
package order
