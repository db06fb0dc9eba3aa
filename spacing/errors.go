package spacing

import "errors"

// ErrNegativeSpacing is returned when a default or override spacing value is
// negative; spacings are minimum separations and cannot be negative.
var ErrNegativeSpacing = errors.New("spacing: negative spacing value")
