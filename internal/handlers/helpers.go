package handlers

import "strconv"

// parseUint converts a path or query parameter to a uint, returning 0 for
// anything unparseable (0 is never a valid row id)
func parseUint(s string) uint {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}
