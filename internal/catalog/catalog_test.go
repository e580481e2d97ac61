package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
)

func TestList(t *testing.T) {
	programs := List()

	require.Len(t, programs, 5)
	assert.Equal(t, domain.ProgramRadhaKalyanam, programs[0].ID)
	assert.Equal(t, domain.ProgramNamaBhiksha, programs[4].ID)

	for _, p := range programs {
		assert.NotEmpty(t, p.Name, "program %s", p.ID)
		assert.NotEmpty(t, p.Description, "program %s", p.ID)
		assert.NotEmpty(t, p.Duration, "program %s", p.ID)
		assert.NotEmpty(t, p.DonationAmount, "program %s", p.ID)
		assert.NotEmpty(t, p.ImageURL, "program %s", p.ID)
	}
}

func TestListReturnsCopy(t *testing.T) {
	first := List()
	first[0].Name = "mutated"

	second := List()
	assert.Equal(t, "Radha Kalyanam", second[0].Name)
}

func TestGet(t *testing.T) {
	p, err := Get(domain.ProgramNamaRuchi)
	require.NoError(t, err)
	assert.Equal(t, "Nama Ruchi", p.Name)
	require.NotNil(t, p.VideoURL)

	_, err = Get("house-warming")
	assert.ErrorIs(t, err, ErrProgramNotFound)

	_, err = Get("")
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestCatalogMatchesKnownProgramSet(t *testing.T) {
	for _, id := range domain.AllProgramIDs {
		_, err := Get(id)
		assert.NoError(t, err, "program %s missing from catalog", id)
	}
}
