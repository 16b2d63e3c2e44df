package model

import "github.com/google/uuid"

// OwnerRef references the owner of a job. It is either a bare user id or an
// expanded user record, Expanded tells which one.
type OwnerRef struct {
	id     uuid.UUID
	record *User
}

// OwnerID builds a bare owner reference.
func OwnerID(id uuid.UUID) OwnerRef {
	return OwnerRef{id: id}
}

// OwnerRecord builds an expanded owner reference.
func OwnerRecord(u User) OwnerRef {
	return OwnerRef{id: u.ID, record: &u}
}

// Expanded reports whether the reference carries the owner record.
func (o OwnerRef) Expanded() bool {
	return o.record != nil
}

// Record returns the owner record, nil for a bare reference.
func (o OwnerRef) Record() *User {
	return o.record
}

// ID resolves the owner id for both shapes.
func (o OwnerRef) ID() uuid.UUID {
	if o.record != nil {
		return o.record.ID
	}
	return o.id
}

// Is reports whether the reference points at userID.
func (o OwnerRef) Is(userID uuid.UUID) bool {
	return userID != uuid.Nil && o.ID() == userID
}
