package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPassengerRepository(t *testing.T) {
	repo := NewPassengerRepository(&pgxpool.Pool{})
	require.NotNil(t, repo)
	assert.IsType(t, &PGPassengerRepository{}, repo)
}
