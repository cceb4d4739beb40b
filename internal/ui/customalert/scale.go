package customalert

import (
	"math"

	"github.com/riordanpawley/customalert/internal/alert"
	"github.com/riordanpawley/customalert/internal/config"
)

// Scale maps layout units onto terminal cells
type Scale struct {
	UnitsPerColumn float64
	UnitsPerRow    float64
}

// ScaleFrom builds a Scale from display settings
func ScaleFrom(cfg config.DisplayConfig) Scale {
	return Scale{
		UnitsPerColumn: cfg.UnitsPerColumn,
		UnitsPerRow:    cfg.UnitsPerRow,
	}
}

// Geometry measures a host area of width x height cells with insetRows
// reserved at the bottom edge
func (s Scale) Geometry(width, height, insetRows int) alert.Geometry {
	return alert.Geometry{
		Width:       float64(width) * s.UnitsPerColumn,
		Height:      float64(height) * s.UnitsPerRow,
		BottomInset: float64(insetRows) * s.UnitsPerRow,
	}
}

// Columns converts a horizontal length in units to the nearest cell count
func (s Scale) Columns(units float64) int {
	return int(math.Round(units / s.UnitsPerColumn))
}

// Rows converts a vertical length in units to the nearest row count
func (s Scale) Rows(units float64) int {
	return int(math.Round(units / s.UnitsPerRow))
}

// padding returns the whole cells covered by a length, at least floor
func padding(units, perCell float64, floor int) int {
	return max(int(units/perCell), floor)
}
