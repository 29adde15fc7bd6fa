// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx driver. It owns the schema migrations, embedded
// in the binary, and translates driver errors into store errors.
package postgres
