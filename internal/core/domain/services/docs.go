// Package services provides domain services that need read access to the store but
// do not belong to a single aggregate.
//
// The package includes:
//   - ValidationRules: referential existence checks and status legality
//   - CustomerResolver: find-or-create of customers by unique name
//
// Services receive repositories per call so that they always operate inside the
// caller's unit of work.
package services
