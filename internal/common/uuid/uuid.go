package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/wheelrift/internal/common/uuid UUID

type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package.
// A non-empty Prefix is joined to every id with a dash ("note-8c1f...").
type DefaultUUID struct {
	Prefix string
}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewPrefixed returns a generator whose ids carry the given prefix
func NewPrefixed(prefix string) *DefaultUUID {
	return &DefaultUUID{Prefix: prefix}
}

// NewUUID returns a new random (v4) UUID string
func (d *DefaultUUID) NewUUID() string {
	id := uuid.New().String()
	if d.Prefix == "" {
		return id
	}
	return d.Prefix + "-" + id
}
