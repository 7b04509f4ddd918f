package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TintingService/internal/domain"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c.Services, 5)
	assert.Len(t, c.Packages, 3)
	assert.Len(t, c.Tags, 10)
	assert.Len(t, c.Technicians, 3)
	assert.Len(t, c.Vehicles.Models, 8)

	durations := c.DurationCatalog()
	assert.Equal(t, 30, durations["1"])
	assert.Equal(t, 20, durations["2"])
	assert.Equal(t, 60, durations["5"])

	total, unknown := durations.Total([]string{"1", "2"})
	assert.Equal(t, 50, total)
	assert.Empty(t, unknown)
}

func TestDefault_Lookups(t *testing.T) {
	c := Default()

	s, ok := c.Service("3")
	require.True(t, ok)
	assert.Equal(t, "Brake Inspection", s.Name)

	p, ok := c.Package("2")
	require.True(t, ok)
	assert.Len(t, p.Items, 5)

	tech, ok := c.Technician("2")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", tech.Name)
	assert.False(t, tech.Availability.ForDay(time.Saturday).IsWorking())
	assert.True(t, tech.Availability.ForDay(time.Sunday).IsWorking())

	_, ok = c.Technician("999")
	assert.False(t, ok)
	_, ok = c.Service("")
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("testdata/catalog.toml")
	require.NoError(t, err)

	assert.Equal(t, []string{"tint", "ceramic"}, c.Tags)
	assert.Equal(t, 45, c.DurationCatalog()["w1"])

	p, ok := c.Package("p1")
	require.True(t, ok)
	require.Len(t, p.Items, 2)
	assert.False(t, p.Items[1].IsIncluded)

	tech, ok := c.Technician("t1")
	require.True(t, ok)
	assert.Equal(t, domain.DaySchedule{Start: "08:30", End: "12:15"}, tech.Availability.Monday)
	assert.False(t, tech.Availability.Sunday.IsWorking())

	require.Len(t, c.Vehicles.Models, 1)
	assert.Equal(t, "Model 3", c.Vehicles.Models[0].Name)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("unknown keys", func(t *testing.T) {
		_, err := LoadFile("testdata/unknown_keys.toml")
		assert.ErrorIs(t, err, ErrInvalidCatalog)
		assert.Contains(t, err.Error(), "duration")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile("testdata/does_not_exist.toml")
		assert.Error(t, err)
	})
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
	}{
		{
			name: "duplicate service",
			catalog: Catalog{Services: []domain.Service{
				{ID: "1", EstimatedMinutes: 10},
				{ID: "1", EstimatedMinutes: 20},
			}},
		},
		{
			name:    "empty service id",
			catalog: Catalog{Services: []domain.Service{{EstimatedMinutes: 10}}},
		},
		{
			name:    "negative duration",
			catalog: Catalog{Services: []domain.Service{{ID: "1", EstimatedMinutes: -5}}},
		},
		{
			name: "package references unknown service",
			catalog: Catalog{Packages: []domain.Package{
				{ID: "p", Items: []domain.PackageItem{{ServiceID: "missing", IsIncluded: true}}},
			}},
		},
		{
			name: "schedule with only start",
			catalog: Catalog{Technicians: []domain.Technician{
				{ID: "t", Availability: domain.WeeklyAvailability{Monday: domain.DaySchedule{Start: "08:00"}}},
			}},
		},
		{
			name: "schedule end before start",
			catalog: Catalog{Technicians: []domain.Technician{
				{ID: "t", Availability: domain.WeeklyAvailability{Monday: domain.DaySchedule{Start: "16:00", End: "08:00"}}},
			}},
		},
		{
			name: "unparseable schedule",
			catalog: Catalog{Technicians: []domain.Technician{
				{ID: "t", Availability: domain.WeeklyAvailability{Friday: domain.DaySchedule{Start: "8am", End: "16:00"}}},
			}},
		},
		{
			name: "model references unknown make",
			catalog: Catalog{Vehicles: Vehicles{
				Models: []domain.VehicleModel{{ID: "1", MakeID: "42"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.catalog)
			assert.Error(t, err)
		})
	}
}
