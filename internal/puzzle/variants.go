package puzzle

import "github.com/vovakirdan/tui-slide/internal/registry"

// Variants lists the built-in grid sizes.
var Variants = []Variant{
	{ID: "mini", Title: "Mini (3x3)", Rows: 3, Cols: 3},
	{ID: "classic", Title: "Classic (4x4)", Rows: 4, Cols: 4},
	{ID: "large", Title: "Large (5x5)", Rows: 5, Cols: 5},
}

// DefaultVariant is played when none is named.
const DefaultVariant = "classic"

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func(opts registry.Options) registry.Game {
			return New(v, opts)
		})
	}
}
