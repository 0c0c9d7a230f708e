package queries_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStationLoadQuery_Valid(t *testing.T) {
	query := queries.NewGetStationLoadQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetStationLoadQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStationLoadQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStationLoadQueryIsNotConstructed)
}
