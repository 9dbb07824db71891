package styles

// Text scale bounds. The scale mirrors a font size; the terminal renderer
// turns it into row padding.
const (
	DefaultScale = 11
	MinScale     = 8
	ScaleStep    = 2
)

// Appearance is the user's presentation preference: theme and text scale.
type Appearance struct {
	Dark  bool
	Scale int
}

// DefaultAppearance returns the light theme at the default scale
func DefaultAppearance() Appearance {
	return Appearance{Scale: DefaultScale}
}

// Normalize fills in an unset scale and clamps it to MinScale
func (a Appearance) Normalize() Appearance {
	if a.Scale == 0 {
		a.Scale = DefaultScale
	}
	if a.Scale < MinScale {
		a.Scale = MinScale
	}
	return a
}

// ToggleTheme switches between light and dark
func (a Appearance) ToggleTheme() Appearance {
	a.Dark = !a.Dark
	return a
}

// Bigger increases the text scale by one step
func (a Appearance) Bigger() Appearance {
	a = a.Normalize()
	a.Scale += ScaleStep
	return a
}

// Smaller decreases the text scale by one step, never below MinScale
func (a Appearance) Smaller() Appearance {
	a = a.Normalize()
	a.Scale = max(MinScale, a.Scale-ScaleStep)
	return a
}

// RowPadding is the horizontal padding applied to list rows at this scale
func (a Appearance) RowPadding() int {
	return (a.Normalize().Scale - MinScale) / ScaleStep
}
