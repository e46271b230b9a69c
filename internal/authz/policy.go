// Package authz is the authorization gate: a static table mapping
// (entity, operation) to a predicate over the requester and a row view.
// Services consult it before every mutation and before restricted reads, so
// the ownership rules live in one place instead of being scattered across
// handlers.
package authz

import "errors"

// ErrDenied is deliberately generic. Callers translate it to the same
// surface as "not found" so unauthorized rows are indistinguishable from
// absent ones.
var ErrDenied = errors.New("operation denied")

type Entity string

const (
	EntityProfile          Entity = "profile"
	EntityMedia            Entity = "media"
	EntityVenue            Entity = "venue"
	EntityJob              Entity = "job"
	EntityJobApplication   Entity = "job_application"
	EntityGroup            Entity = "group"
	EntityGroupMember      Entity = "group_member"
	EntityGroupApplication Entity = "group_application"
	EntityMessage          Entity = "message"
)

type Operation string

const (
	OpCreate       Operation = "create"
	OpRead         Operation = "read"
	OpUpdate       Operation = "update"
	OpUpdateStatus Operation = "update_status"
	OpDelete       Operation = "delete"
)

// Row views. Services project the fields the predicates need; predicates
// never touch storage themselves.

type ProfileRow struct {
	ID string
}

type MediaRow struct {
	OwnerID string
}

type VenueRow struct {
	OwnerID *string
}

type JobRow struct {
	VenueID string
}

type JobApplicationRow struct {
	ArtistID   string
	JobVenueID string
}

type GroupRow struct {
	CreatedBy string
}

type GroupMemberRow struct {
	GroupCreatedBy string
	MemberID       string
}

type GroupApplicationRow struct {
	RequesterIsMember bool
	JobVenueID        string
}

type MessageRow struct {
	SenderID   string
	ReceiverID string
}

// Predicate decides whether requester may perform an operation on row.
type Predicate func(requesterID string, row any) bool

// Gate holds the policy table.
type Gate struct {
	rules map[Entity]map[Operation]Predicate
}

// NewGate builds the gate with the full policy table. Rules not present in
// the table (e.g. unrestricted reads) are simply not gated; Authorize on a
// missing rule denies, which keeps accidental gaps closed.
func NewGate() *Gate {
	g := &Gate{rules: make(map[Entity]map[Operation]Predicate)}

	g.add(EntityProfile, OpUpdate, func(requesterID string, row any) bool {
		r, ok := row.(ProfileRow)
		return ok && requesterID == r.ID
	})
	g.add(EntityProfile, OpDelete, func(requesterID string, row any) bool {
		r, ok := row.(ProfileRow)
		return ok && requesterID == r.ID
	})

	mediaOwner := func(requesterID string, row any) bool {
		r, ok := row.(MediaRow)
		return ok && requesterID == r.OwnerID
	}
	g.add(EntityMedia, OpCreate, mediaOwner)
	g.add(EntityMedia, OpUpdate, mediaOwner)
	g.add(EntityMedia, OpDelete, mediaOwner)

	// Venue insert only needs a valid session; update/delete are owner-only.
	// Rows with no owner are read-only until claimed.
	g.add(EntityVenue, OpCreate, func(requesterID string, row any) bool {
		return requesterID != ""
	})
	venueOwner := func(requesterID string, row any) bool {
		r, ok := row.(VenueRow)
		return ok && r.OwnerID != nil && requesterID == *r.OwnerID
	}
	g.add(EntityVenue, OpUpdate, venueOwner)
	g.add(EntityVenue, OpDelete, venueOwner)

	jobOwner := func(requesterID string, row any) bool {
		r, ok := row.(JobRow)
		return ok && requesterID == r.VenueID
	}
	g.add(EntityJob, OpCreate, jobOwner)
	g.add(EntityJob, OpUpdate, jobOwner)
	g.add(EntityJob, OpDelete, jobOwner)

	g.add(EntityJobApplication, OpCreate, func(requesterID string, row any) bool {
		r, ok := row.(JobApplicationRow)
		return ok && requesterID == r.ArtistID
	})
	g.add(EntityJobApplication, OpRead, func(requesterID string, row any) bool {
		r, ok := row.(JobApplicationRow)
		return ok && (requesterID == r.ArtistID || requesterID == r.JobVenueID)
	})
	g.add(EntityJobApplication, OpUpdateStatus, func(requesterID string, row any) bool {
		r, ok := row.(JobApplicationRow)
		return ok && requesterID == r.JobVenueID
	})

	groupCreator := func(requesterID string, row any) bool {
		r, ok := row.(GroupRow)
		return ok && requesterID == r.CreatedBy
	}
	g.add(EntityGroup, OpCreate, groupCreator)
	g.add(EntityGroup, OpUpdate, groupCreator)
	g.add(EntityGroup, OpDelete, groupCreator)

	g.add(EntityGroupMember, OpCreate, func(requesterID string, row any) bool {
		r, ok := row.(GroupMemberRow)
		return ok && requesterID == r.GroupCreatedBy
	})
	// The creator removes anyone; a member removes themself.
	g.add(EntityGroupMember, OpDelete, func(requesterID string, row any) bool {
		r, ok := row.(GroupMemberRow)
		return ok && (requesterID == r.GroupCreatedBy || requesterID == r.MemberID)
	})

	g.add(EntityGroupApplication, OpCreate, func(requesterID string, row any) bool {
		r, ok := row.(GroupApplicationRow)
		return ok && r.RequesterIsMember
	})
	g.add(EntityGroupApplication, OpRead, func(requesterID string, row any) bool {
		r, ok := row.(GroupApplicationRow)
		return ok && (r.RequesterIsMember || requesterID == r.JobVenueID)
	})
	g.add(EntityGroupApplication, OpUpdateStatus, func(requesterID string, row any) bool {
		r, ok := row.(GroupApplicationRow)
		return ok && requesterID == r.JobVenueID
	})

	g.add(EntityMessage, OpCreate, func(requesterID string, row any) bool {
		r, ok := row.(MessageRow)
		return ok && requesterID == r.SenderID && r.SenderID != r.ReceiverID
	})
	messageParty := func(requesterID string, row any) bool {
		r, ok := row.(MessageRow)
		return ok && (requesterID == r.SenderID || requesterID == r.ReceiverID)
	}
	g.add(EntityMessage, OpRead, messageParty)
	g.add(EntityMessage, OpUpdate, messageParty)

	return g
}

func (g *Gate) add(entity Entity, op Operation, p Predicate) {
	ops, ok := g.rules[entity]
	if !ok {
		ops = make(map[Operation]Predicate)
		g.rules[entity] = ops
	}
	ops[op] = p
}

// Can reports whether the requester may perform op on the row. An anonymous
// requester or a missing rule denies.
func (g *Gate) Can(entity Entity, op Operation, requesterID string, row any) bool {
	if requesterID == "" {
		return false
	}
	ops, ok := g.rules[entity]
	if !ok {
		return false
	}
	p, ok := ops[op]
	if !ok {
		return false
	}
	return p(requesterID, row)
}

// Authorize is Can returning ErrDenied on failure.
func (g *Gate) Authorize(entity Entity, op Operation, requesterID string, row any) error {
	if !g.Can(entity, op, requesterID, row) {
		return ErrDenied
	}
	return nil
}
