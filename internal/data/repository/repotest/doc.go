// Package repotest provides in-memory implementations of the repository
// interfaces for service and handler tests.
//
// Transactions are serialised with a single mutex and rolled back by
// restoring a snapshot, which gives tests the same all-or-nothing and
// mutual-exclusion guarantees the Postgres row locks provide.
//
//	store := repotest.NewStore()
//	repo := store.Repository()
//	svc := usecase.NewLedgerService(repo, zaptest.NewLogger(t))
package repotest
