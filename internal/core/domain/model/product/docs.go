// Package product holds the Product entity: a sellable item identified by a
// store-generated ID. Products are seeded once and never mutated afterwards.
package product
