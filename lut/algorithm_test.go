package lut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithmParameters(t *testing.T) {
	tests := []struct {
		algo     Algorithm
		name     string
		power    float64
		weighted bool
	}{
		{ShepardsMethod, "shepards-method", 2.0, true},
		{GaussianRBF, "gaussian-rbf", 1.5, true},
		{LinearRBF, "linear-rbf", 1.0, false},
		{GaussianSampling, "gaussian-sampling", 2.5, true},
		{NearestNeighbor, "nearest-neighbor", 1.0, false},
		{Hald, "hald", 2.0, true},
		{Euclide, "euclide", 1.0, false},
		{Mean, "mean", 1.5, true},
		{Std, "std", 2.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.algo.String())
			assert.Equal(t, tt.power, tt.algo.Power())
			assert.Equal(t, tt.weighted, tt.algo.Weighted())
			assert.Equal(t, tt.algo, ParseAlgorithm(tt.name))
		})
	}
}

func TestParseAlgorithmAliases(t *testing.T) {
	aliases := map[string]Algorithm{
		"shepards": ShepardsMethod,
		"shepard":  ShepardsMethod,
		"gaussian": GaussianRBF,
		"rbf":      GaussianRBF,
		"linear":   LinearRBF,
		"sampling": GaussianSampling,
		"gauss":    GaussianSampling,
		"nearest":  NearestNeighbor,
		"nn":       NearestNeighbor,
		"NEAREST":  NearestNeighbor,
	}
	for in, want := range aliases {
		assert.Equal(t, want, ParseAlgorithm(in), in)
	}

	// unknown names fall back to shepards-method
	assert.Equal(t, ShepardsMethod, ParseAlgorithm("no-such-algorithm"))
	assert.Equal(t, ShepardsMethod, ParseAlgorithm(""))
}

func TestParseQuality(t *testing.T) {
	a, ok := ParseQuality("fast")
	require.True(t, ok)
	assert.Equal(t, NearestNeighbor, a)

	a, ok = ParseQuality("normal")
	require.True(t, ok)
	assert.Equal(t, ShepardsMethod, a)

	a, ok = ParseQuality("HIGH")
	require.True(t, ok)
	assert.Equal(t, GaussianSampling, a)

	_, ok = ParseQuality("ultra")
	assert.False(t, ok)
}
