package search

import "errors"

// ErrInvalidNeedle is returned by NewNeedle when the requested anomaly
// offset does not fit within the needle, or by NewNeedleAuto when the
// needle is too short to carry a 4-byte anomaly window.
var ErrInvalidNeedle = errors.New("search: invalid needle or anomaly offset")
