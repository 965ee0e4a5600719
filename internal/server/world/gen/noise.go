package gen

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Layer identifies one of the independently seeded noise layers.
type Layer int

const (
	LayerElevation Layer = iota
	LayerTemperature
	LayerHumidity
	LayerScatter
	layerCount
)

// Per-layer seed offsets keep the layers uncorrelated.
var layerSeedOffsets = [layerCount]int64{0, 100, 200, 300}

const warpSeedOffset = 400

// NoiseScales controls feature frequency per layer plus the domain-warp
// parameters.
type NoiseScales struct {
	Elevation    float64 `json:"elevation"`
	Temperature  float64 `json:"temperature"`
	Humidity     float64 `json:"humidity"`
	Scatter      float64 `json:"scatter"`
	Warp         float64 `json:"warp"`
	WarpStrength float64 `json:"warp_strength"`
}

// DefaultNoiseScales returns the scales used by the default world.
func DefaultNoiseScales() NoiseScales {
	return NoiseScales{
		Elevation:    0.05,
		Temperature:  0.015,
		Humidity:     0.025,
		Scatter:      0.3,
		Warp:         0.012,
		WarpStrength: 4.0,
	}
}

// NoiseField holds the four seeded samplers plus a low-frequency warp field
// used to distort elevation into river-like shapes.
type NoiseField struct {
	layers [layerCount]*perlin.Perlin
	warp   opensimplex.Noise
	scales NoiseScales
}

// NewNoiseField creates the layers from a world seed. Equal seeds produce
// identical fields.
func NewNoiseField(seed int64, scales NoiseScales) *NoiseField {
	f := &NoiseField{warp: opensimplex.New(seed + warpSeedOffset), scales: scales}
	for l := Layer(0); l < layerCount; l++ {
		f.layers[l] = perlin.NewPerlin(2, 2, 3, seed+layerSeedOffsets[l])
	}
	return f
}

func (f *NoiseField) scaleFor(l Layer) float64 {
	switch l {
	case LayerElevation:
		return f.scales.Elevation
	case LayerTemperature:
		return f.scales.Temperature
	case LayerHumidity:
		return f.scales.Humidity
	default:
		return f.scales.Scatter
	}
}

// Sample returns layer noise at world coordinates, in [-1, 1].
func (f *NoiseField) Sample(l Layer, x, y float64) float64 {
	s := f.scaleFor(l)
	return clampUnit(f.layers[l].Noise2D(x*s, y*s))
}

// WarpedSample samples the layer with its input coordinates displaced by the
// warp field. The low-frequency warp value is normalized and added to both
// scaled coordinates, which bends otherwise axis-aligned features.
func (f *NoiseField) WarpedSample(l Layer, x, y float64) float64 {
	w := Normalize(f.warp.Eval2(x*f.scales.Warp, y*f.scales.Warp))
	s := f.scaleFor(l)
	k := f.scales.WarpStrength
	return clampUnit(f.layers[l].Noise2D(x*s+w*k, y*s+w*k))
}

// Normalize maps a noise value from [-1, 1] to [0, 1].
func Normalize(v float64) float64 {
	return (v + 1) / 2
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
