// Package kernel provides the shared value objects of the order domain.
//
// The package includes:
//   - ID: a store-generated, strictly positive integer identifier used by products,
//     customers and orders
//
// Value objects are immutable; their zero values are invalid and fail Validate.
package kernel
