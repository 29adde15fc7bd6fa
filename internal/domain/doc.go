// Package domain holds the entity records of the API (users, products and
// orders) and the schemas that turn raw JSON payloads into them. Parsing
// collects every field problem into a ValidationError whose messages are
// returned to clients unchanged.
package domain
