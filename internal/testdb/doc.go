// Package testdb provides helpers for database integration tests: opening a
// connection from DATABASE_URL, applying the embedded migrations, running a
// test inside a rolled-back transaction, and resetting tables between tests
// that must commit.
//
// Tests using it are expected to carry the integration build tag and skip
// themselves when no database is configured:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	    users := postgres.NewPostgresUserStore(tx, nil)
//	    ...
//	})
package testdb
