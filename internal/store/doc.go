// Package store defines the persistence contracts for users, products and
// orders, the errors stores report, and the transaction helper every
// service operation runs inside.
package store
