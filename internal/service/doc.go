// Package service contains the use cases of the API. Each operation opens one
// database transaction, performs its existence checks and validation in the
// order clients observe, mutates through the stores in internal/store, and
// commits or rolls back on exit.
//
// Services receive raw payloads rather than parsed records so that, for
// updates, the existence check runs before validation inside the same
// transaction.
package service
