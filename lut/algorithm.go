package lut

import "strings"

// Algorithm selects a color-matching strategy. Each algorithm carries a
// distance-weighting exponent and a flag choosing between the weighted-blend
// family (output is a distance-weighted average of all palette colors) and
// the nearest family (output is the single closest palette color).
type Algorithm int

const (
	ShepardsMethod Algorithm = iota
	GaussianRBF
	LinearRBF
	GaussianSampling
	NearestNeighbor
	Hald
	Euclide
	Mean
	Std
)

var algorithmNames = [...]string{
	ShepardsMethod:   "shepards-method",
	GaussianRBF:      "gaussian-rbf",
	LinearRBF:        "linear-rbf",
	GaussianSampling: "gaussian-sampling",
	NearestNeighbor:  "nearest-neighbor",
	Hald:             "hald",
	Euclide:          "euclide",
	Mean:             "mean",
	Std:              "std",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return "unknown"
	}
	return algorithmNames[a]
}

// Power is the exponent applied to the squared CIELAB distance when
// computing blend weights. Weighted reports whether the algorithm blends
// all palette colors or picks the nearest one.
func (a Algorithm) Power() float64 {
	switch a {
	case GaussianRBF, Mean:
		return 1.5
	case LinearRBF, NearestNeighbor, Euclide:
		return 1.0
	case GaussianSampling:
		return 2.5
	default: // ShepardsMethod, Hald, Std
		return 2.0
	}
}

func (a Algorithm) Weighted() bool {
	switch a {
	case LinearRBF, NearestNeighbor, Euclide:
		return false
	default:
		return true
	}
}

// ParseAlgorithm resolves an algorithm name or one of its short aliases.
// Unknown names fall back to shepards-method.
func ParseAlgorithm(s string) Algorithm {
	switch strings.ToLower(s) {
	case "shepards", "shepards-method", "shepard":
		return ShepardsMethod
	case "gaussian", "gaussian-rbf", "rbf":
		return GaussianRBF
	case "linear", "linear-rbf":
		return LinearRBF
	case "sampling", "gaussian-sampling", "gauss":
		return GaussianSampling
	case "nearest", "nearest-neighbor", "nn":
		return NearestNeighbor
	case "hald":
		return Hald
	case "euclide":
		return Euclide
	case "mean":
		return Mean
	case "std":
		return Std
	default:
		return ShepardsMethod
	}
}

// ParseQuality maps a coarse quality setting to an algorithm.
func ParseQuality(s string) (Algorithm, bool) {
	switch strings.ToLower(s) {
	case "fast":
		return NearestNeighbor, true
	case "normal":
		return ShepardsMethod, true
	case "high":
		return GaussianSampling, true
	default:
		return ShepardsMethod, false
	}
}
