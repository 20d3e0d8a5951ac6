package domain

import "fmt"

// ConnectionType is the closed set of edge kinds between two events.
type ConnectionType string

const (
	// ConnectionLinear asserts the target follows (or coincides with) the source in time.
	ConnectionLinear ConnectionType = "LINEAR"
	// ConnectionTimeTravel may point to an earlier date than its source.
	ConnectionTimeTravel ConnectionType = "TIMETRAVEL"
)

func (c ConnectionType) String() string { return string(c) }

func (c ConnectionType) IsValid() bool {
	switch c {
	case ConnectionLinear, ConnectionTimeTravel:
		return true
	}
	return false
}

// ParseConnectionType converts s into a ConnectionType. The empty string
// defaults to LINEAR; any other unknown value is rejected.
func ParseConnectionType(s string) (ConnectionType, error) {
	if s == "" {
		return ConnectionLinear, nil
	}
	c := ConnectionType(s)
	if !c.IsValid() {
		return "", fmt.Errorf("connection type %q: must be LINEAR or TIMETRAVEL: %w", s, ErrValidation)
	}
	return c, nil
}

// MarshalText implements encoding.TextMarshaler.
func (c ConnectionType) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("connection type %q: %w", string(c), ErrValidation)
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ConnectionType) UnmarshalText(b []byte) error {
	parsed, err := ParseConnectionType(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeProject    EntityType = "PROJECT"
	EntityTypeEvent      EntityType = "EVENT"
	EntityTypeConnection EntityType = "CONNECTION"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeProject, EntityTypeEvent, EntityTypeConnection:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
	AuditActionImport AuditAction = "IMPORT"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionImport:
		return true
	}
	return false
}
