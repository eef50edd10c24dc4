// Package storage provides persistent storage implementations.
//
// Implementations:
//   - sqlite: embedded SQLite database file (MVP)
//
// The MVP bootstraps the database file without defining a schema. Tables
// for users, product categories, products, purchases (with remaining
// quantities for FIFO costing), and sales are introduced together with
// the features that need them.
package storage
