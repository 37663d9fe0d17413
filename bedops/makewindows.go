package bedops

import (
	"github.com/pkg/errors"

	"github.com/kriemo/valr-demo/interval"
)

// MakeWindowsOpts configures MakeWindows.  Size is the window width; Step,
// when smaller than Size, produces sliding windows, and defaults to Size
// (non-overlapping tiles) when zero.
type MakeWindowsOpts struct {
	Size int
	Step int
}

// MakeWindows subdivides each row into windows of opts.Size bases (the last
// window of a row may be shorter).  The returned id slice parallels the
// output table and numbers windows monotonically within each source row,
// restarting at 0 per row.  Payload columns are copied onto every window.
func MakeWindows(t interval.Table, opts MakeWindowsOpts) (interval.Table, []int, error) {
	if opts.Size <= 0 {
		return nil, nil, errors.Errorf("bedops.MakeWindows: window size %d must be positive", opts.Size)
	}
	step := opts.Step
	if step == 0 {
		step = opts.Size
	}
	if step < 0 {
		return nil, nil, errors.Errorf("bedops.MakeWindows: step %d must be positive", step)
	}
	var out interval.Table
	var ids []int
	for _, iv := range t {
		if err := iv.Validate(nil); err != nil {
			return nil, nil, err
		}
		id := 0
		for start := iv.Start; start < iv.End; start += step {
			end := start + opts.Size
			if end > iv.End {
				end = iv.End
			}
			w := iv.Clone()
			w.Start, w.End = start, end
			out = append(out, w)
			ids = append(ids, id)
			id++
			if end == iv.End {
				break
			}
		}
	}
	return out, ids, nil
}
