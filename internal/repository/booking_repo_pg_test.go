package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingRepository(t *testing.T) {
	repo := NewBookingRepository(&pgxpool.Pool{})
	require.NotNil(t, repo)
	assert.IsType(t, &PGBookingRepository{}, repo)
}
