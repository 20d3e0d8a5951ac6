// Package model holds the custom GraphQL scalars bound in gqlgen.yml.
package model

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

// MarshalDateTime writes t as an RFC 3339 string.
func MarshalDateTime(t time.Time) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, strconv.Quote(t.UTC().Format(time.RFC3339Nano)))
	})
}

func UnmarshalDateTime(v any) (time.Time, error) {
	switch v := v.(type) {
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, fmt.Errorf("DateTime must be RFC 3339: %w", domain.ErrValidation)
		}
		return t.UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("DateTime must be a string in RFC3339 format")
	}
}

// MarshalUUID marshals UUID to GraphQL string.
func MarshalUUID(u uuid.UUID) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, `"`+u.String()+`"`)
	})
}

// UnmarshalUUID unmarshals GraphQL string to UUID.
func UnmarshalUUID(v any) (uuid.UUID, error) {
	switch v := v.(type) {
	case string:
		return uuid.Parse(v)
	default:
		return uuid.UUID{}, fmt.Errorf("UUID must be a string")
	}
}

func MarshalConnectionType(ct domain.ConnectionType) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, strconv.Quote(string(ct)))
	})
}

// UnmarshalConnectionType accepts the enum names; the schema already
// rejects anything else before this runs.
func UnmarshalConnectionType(v any) (domain.ConnectionType, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("ConnectionType must be a string")
	}
	return domain.ParseConnectionType(s)
}
