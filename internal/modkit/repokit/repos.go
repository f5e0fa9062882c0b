// Package repokit holds the repo binding seams shared by modules
package repokit

import "dreammap/internal/platform/store"

type (
	// Queryer is the sql surface repos run against
	Queryer = store.RowQuerier
	// TxRunner is a Queryer that can open transactions
	TxRunner = store.TxRunner
)
