package layering

// Options tunes the MinWidth search space (spec.md §4.4).
type Options struct {
	// UpperBoundOnWidth loosely bounds the width of a layer, normalized by
	// the average node size. A negative value (the default) searches both
	// 1..4 and keeps the narrowest result.
	UpperBoundOnWidth int
	// Compensator scales UpperBoundOnWidth when estimating the width of
	// layers not yet placed. A negative value (the default) searches both
	// 1..2 and keeps the narrowest result.
	Compensator int
}

// DefaultOptions mirrors the upstream ELK MinWidthLayerer defaults: both
// knobs unset, so the full recommended search range is tried.
func DefaultOptions() Options {
	return Options{UpperBoundOnWidth: -1, Compensator: -1}
}

func (o Options) widthRange() (int, int) {
	if o.UpperBoundOnWidth < 0 {
		return 1, 4
	}
	return o.UpperBoundOnWidth, o.UpperBoundOnWidth
}

func (o Options) compensatorRange() (int, int) {
	if o.Compensator < 0 {
		return 1, 2
	}
	return o.Compensator, o.Compensator
}
