package models

import "fmt"

// Predicate narrows a list query to the rows owned by one professional.
// A zero Predicate means no narrowing. When NullableColumn is set, rows
// where that column IS NULL stay visible as well.
type Predicate struct {
	Column         string
	NullableColumn string
	OwnerID        int64
}

func (p Predicate) IsEmpty() bool {
	return p.Column == ""
}

// SQL renders the fragment using argIndex as its only placeholder.
func (p Predicate) SQL(argIndex int) string {
	if p.NullableColumn != "" {
		return fmt.Sprintf("(%s = $%d OR %s IS NULL)", p.Column, argIndex, p.NullableColumn)
	}
	return fmt.Sprintf("%s = $%d", p.Column, argIndex)
}

// Ownership is the owning professional of a record, as stored.
// OwnerID is nil when the record is not linked to any professional.
type Ownership struct {
	OwnerID *int64
}

// ResourceFamily describes how to resolve the owning professional of a
// record and how to narrow list queries of that family.
type ResourceFamily struct {
	Name           string
	ScopeColumn    string
	NullableColumn string
	OwnerQuery     string
	UnownedVisible bool
}
