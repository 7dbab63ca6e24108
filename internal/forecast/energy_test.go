package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateSolarEnergy(t *testing.T) {
	// 1 hour of sunshine: 2.5 kW * 1 h * 0.2 = 0.5 kWh.
	assert.Equal(t, 0.5, EstimateSolarEnergy(3600))
	assert.Equal(t, 0.0, EstimateSolarEnergy(0))

	// 5000 s = 1.3889 h -> 0.6944 kWh, rounded to two decimals.
	assert.Equal(t, 0.69, EstimateSolarEnergy(5000))

	// A full 12-hour day.
	assert.Equal(t, 6.0, EstimateSolarEnergy(12*3600))

	// No bounds checking: negative input passes through the arithmetic.
	assert.Equal(t, -0.5, EstimateSolarEnergy(-3600))
}
