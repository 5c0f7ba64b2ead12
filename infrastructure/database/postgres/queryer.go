package postgres

import (
	"database/sql"
)

// Queryer is the subset of database/sql shared by *sql.DB and *sql.Tx,
// so repositories can run against either a connection or an open
// transaction.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
