// Package customer holds the Customer entity. Customers are resolved by name, which is
// unique across the store, and are created lazily the first time an order names them.
package customer
