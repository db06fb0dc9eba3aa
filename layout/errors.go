package layout

import (
	"errors"
	"fmt"
)

var errBadTuning = errors.New("tuning knob out of range")

// ErrBadTuning is returned by Options.validate when Thoroughness is below
// 1 or FixedAlignment names a value graph.FixedAlignment does not define.
var ErrBadTuning = fmt.Errorf("layout: %w", errBadTuning)
