package model

import (
	"github.com/google/uuid"
)

// Channel is the endpoint namespace a request arrived on. It never selects
// the role on its own; it only has to agree with the role inside the
// credential's signed claims.
type Channel string

const (
	ChannelCustomer Channel = "customer"
	ChannelGuest    Channel = "guest"
	ChannelAdmin    Channel = "admin"
)

// Kind discriminates the Principal variants
type Kind string

const (
	KindCustomer Kind = "customer"
	KindGuest    Kind = "guest"
	KindAdmin    Kind = "admin"
)

// Principal is the authenticated identity of a request.
// Exactly one variant is produced per resolved credential.
// Principals are built per-request and never persisted.
type Principal interface {
	Kind() Kind
}

// Customer is an event organizer
type Customer struct {
	ID    uuid.UUID
	Email string
}

func (Customer) Kind() Kind { return KindCustomer }

// Guest is an event attendee; always scoped to a single event
type Guest struct {
	ID      uuid.UUID
	EventID uuid.UUID
	Email   string
}

func (Guest) Kind() Kind { return KindGuest }

// Admin is an operator account
type Admin struct {
	ID    uuid.UUID
	Level string
}

func (Admin) Kind() Kind { return KindAdmin }
