package accessory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconFor(t *testing.T) {
	tests := map[string]Icon{
		"speed":            SpeedIcon,
		"acceleration":     AccelerationIcon,
		"turning_diameter": ForceIcon,
		"gasoline_motor":   GasolineIcon,
		"electric_motor":   EnergyIcon,
		"hybrid_motor":     HybridIcon,
		"exchange":         ExchangeIcon,
		"seats":            PeopleIcon,
	}
	for in, want := range tests {
		assert.Equal(t, want, IconFor(in), in)
		assert.True(t, Known(in), in)
	}
}

func TestIconForUnknownFallsBackToCar(t *testing.T) {
	for _, in := range []string{"", "turbo", "SPEED", "seats "} {
		assert.Equal(t, CarIcon, IconFor(in), in)
		assert.False(t, Known(in), in)
	}
}
