// Package postgres implements the store interfaces over a PostgreSQL
// database using database/sql with the pgx stdlib driver.
package postgres
