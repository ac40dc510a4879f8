package entity

// ActorKind tells which identity table an actor id points at.
type ActorKind string

const (
	ActorCustomer ActorKind = "customer"
	ActorEmployee ActorKind = "employee"
)

// Actor is the identity a mutation is attributed to. It is resolved at the
// HTTP boundary and passed down explicitly; the zero value means "unknown".
type Actor struct {
	Kind  ActorKind `json:"kind"`
	ID    int64     `json:"id"`
	Roles Roles     `json:"roles,omitempty"`
}

// CustomerActor builds an actor for a storefront customer.
func CustomerActor(id int64) Actor {
	return Actor{Kind: ActorCustomer, ID: id, Roles: Roles{RoleCustomer}}
}

// EmployeeActor builds an actor for a staff member.
func EmployeeActor(id int64, roles ...Role) Actor {
	if len(roles) == 0 {
		roles = Roles{RoleEmployee}
	}

	return Actor{Kind: ActorEmployee, ID: id, Roles: roles}
}

// IsZero reports whether no identity is attached.
func (a Actor) IsZero() bool {
	return a.ID <= 0 || (a.Kind != ActorCustomer && a.Kind != ActorEmployee)
}

// CustomerID returns the id when the actor is a customer.
func (a Actor) CustomerID() *int64 {
	if a.IsZero() || a.Kind != ActorCustomer {
		return nil
	}
	id := a.ID

	return &id
}

// EmployeeID returns the id when the actor is a staff member.
func (a Actor) EmployeeID() *int64 {
	if a.IsZero() || a.Kind != ActorEmployee {
		return nil
	}
	id := a.ID

	return &id
}
