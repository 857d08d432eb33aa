// Package id generates unique record identifiers.
//
// Ids are a human-readable kind tag plus a random UUID, e.g.
// "acc_7b0c7e4e-0f3a-4a7e-9a5e-2f1f0b9d8c6d". The random part carries 122
// bits of entropy, so ids are unique across the process lifetime and, with
// overwhelming probability, across all previously persisted data.
package id

import (
	"github.com/google/uuid"
)

// Record kind tags.
const (
	KindAccount     = "acc"
	KindTransaction = "tx"
	KindFixedCost   = "fc"
)

// New returns a fresh id for the given kind tag.
func New(kind string) string {
	return kind + "_" + uuid.NewString()
}
