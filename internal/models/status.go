// Package models defines the record shapes persisted to the JSON documents
// and the in-process session. The json tags reproduce the original on-disk
// field names so existing documents keep loading unchanged.
package models

import "fmt"

// Status is the loyalty tier shared by catalog accounts and users.
type Status string

const (
	StatusBronze   Status = "Bronze"
	StatusSilver   Status = "Silver"
	StatusGold     Status = "Gold"
	StatusUltimate Status = "Ultimate"
)

// ParseStatus validates user-entered status text. Stored documents are never
// run through this: unknown values already on disk are passed through as-is.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusBronze, StatusSilver, StatusGold, StatusUltimate:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}
