package component

import "github.com/google/uuid"

// Identity is attached to every spawned entity: a stable instance id
// plus the template the entity was built from. It is engine-assigned,
// not authorable, so it is not part of the template schema.
type Identity struct {
	ID       string
	Template string
}

// NewIdentity mints an identity for an instance of the named template.
func NewIdentity(template string) *Identity {
	return &Identity{ID: uuid.NewString(), Template: template}
}
