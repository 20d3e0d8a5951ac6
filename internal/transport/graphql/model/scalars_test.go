package model

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

func TestDateTime_RoundTrip(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("X", 3600))
	var buf bytes.Buffer
	MarshalDateTime(in).MarshalGQL(&buf)
	assert.Equal(t, `"2024-03-01T11:30:00Z"`, buf.String())

	got, err := UnmarshalDateTime("2024-03-01T11:30:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(in))
}

func TestUnmarshalDateTime_Invalid(t *testing.T) {
	t.Parallel()

	_, err := UnmarshalDateTime("yesterday")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = UnmarshalDateTime(42)
	assert.Error(t, err)
}

func TestUUID_RoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	var buf bytes.Buffer
	MarshalUUID(id).MarshalGQL(&buf)
	assert.Equal(t, `"`+id.String()+`"`, buf.String())

	got, err := UnmarshalUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = UnmarshalUUID("nope")
	assert.Error(t, err)
}

func TestConnectionType(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	MarshalConnectionType(domain.ConnectionTimeTravel).MarshalGQL(&buf)
	assert.Equal(t, `"TIMETRAVEL"`, buf.String())

	ct, err := UnmarshalConnectionType("LINEAR")
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectionLinear, ct)

	_, err = UnmarshalConnectionType("SIDEWAYS")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
