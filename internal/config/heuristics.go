package config

import "math"

// UnlimitedWidth is the "no limit" sentinel for dependent width options.
const UnlimitedWidth = math.MaxInt

// defaultMaxWidth is the max_width the scaled heuristic constants were
// calibrated against.
const defaultMaxWidth = 100

// WidthHeuristics holds one derived value per dependent width option.
type WidthHeuristics struct {
	// FnCallWidth is the maximum width of the arguments of a function call
	// before falling back to vertical formatting.
	FnCallWidth int
	// AttrFnLikeWidth is the maximum width of the arguments of a
	// function-like attribute before falling back to vertical formatting.
	AttrFnLikeWidth int
	// StructLitWidth is the maximum width in the body of a struct literal
	// before falling back to vertical formatting.
	StructLitWidth int
	// StructVariantWidth is the maximum width in the body of a struct
	// variant before falling back to vertical formatting.
	StructVariantWidth int
	// ArrayWidth is the maximum width of an array literal before falling
	// back to vertical formatting.
	ArrayWidth int
	// ChainWidth is the maximum length of a method chain to fit on one line.
	ChainWidth int
	// SingleLineIfElseMaxWidth is the maximum line length for single-line
	// if-else expressions.
	SingleLineIfElseMaxWidth int
	// SingleLineLetElseMaxWidth is the maximum line length for single-line
	// let-else statements.
	SingleLineLetElseMaxWidth int
}

// NullWidthHeuristics disables every dependent width limit.
func NullWidthHeuristics() WidthHeuristics {
	return WidthHeuristics{
		FnCallWidth:               UnlimitedWidth,
		AttrFnLikeWidth:           UnlimitedWidth,
		StructLitWidth:            UnlimitedWidth,
		StructVariantWidth:        UnlimitedWidth,
		ArrayWidth:                UnlimitedWidth,
		ChainWidth:                UnlimitedWidth,
		SingleLineIfElseMaxWidth:  UnlimitedWidth,
		SingleLineLetElseMaxWidth: UnlimitedWidth,
	}
}

// SetWidthHeuristics sets every dependent width to maxWidth itself.
func SetWidthHeuristics(maxWidth int) WidthHeuristics {
	return WidthHeuristics{
		FnCallWidth:               maxWidth,
		AttrFnLikeWidth:           maxWidth,
		StructLitWidth:            maxWidth,
		StructVariantWidth:        maxWidth,
		ArrayWidth:                maxWidth,
		ChainWidth:                maxWidth,
		SingleLineIfElseMaxWidth:  maxWidth,
		SingleLineLetElseMaxWidth: maxWidth,
	}
}

// ScaledWidthHeuristics scales the calibrated per-option constants when
// maxWidth exceeds the default of 100. The ratio is rounded to one decimal
// place before scaling, matching the calibration of the constants.
func ScaledWidthHeuristics(maxWidth int) WidthHeuristics {
	ratio := 1.0
	if maxWidth > defaultMaxWidth {
		ratio = math.Round(float64(maxWidth)/defaultMaxWidth*10) / 10
	}
	scale := func(v float64) int {
		return int(math.Round(v * ratio))
	}
	return WidthHeuristics{
		FnCallWidth:               scale(60),
		AttrFnLikeWidth:           scale(70),
		StructLitWidth:            scale(18),
		StructVariantWidth:        scale(35),
		ArrayWidth:                scale(60),
		ChainWidth:                scale(60),
		SingleLineIfElseMaxWidth:  scale(50),
		SingleLineLetElseMaxWidth: scale(50),
	}
}
