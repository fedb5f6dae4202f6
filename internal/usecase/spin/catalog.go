package spin

import "github.com/unmined/spinrewards/internal/domain"

// DefaultShapes: three common shapes at 30 and the star at 10.
var DefaultShapes = []domain.Category{
	{ID: "circle", Name: "Circle", Weight: 30},
	{ID: "square", Name: "Square", Weight: 30},
	{ID: "triangle", Name: "Triangle", Weight: 30},
	{ID: "star", Name: "Star", Weight: 10},
}

// DefaultColors are the colour rarities in percent.
var DefaultColors = []domain.Category{
	{ID: "gray", Name: "Gray", Weight: 44.8899, Hex: "#9ca3af"},
	{ID: "green", Name: "Green", Weight: 30, Hex: "#22c55e"},
	{ID: "blue", Name: "Blue", Weight: 20, Hex: "#3b82f6"},
	{ID: "purple", Name: "Purple", Weight: 5, Hex: "#a855f7"},
	{ID: "yellow", Name: "Yellow", Weight: 0.1, Hex: "#eab308"},
	{ID: "pink", Name: "Pink", Weight: 0.01, Hex: "#ec4899"},
	{ID: "red", Name: "Red", Weight: 0.0001, Hex: "#ef4444"},
}
