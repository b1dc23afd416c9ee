package exr

// intFromInt32 converts a declared 32-bit size to an int, rejecting
// negative values before any allocation sized by them.
func intFromInt32(n int32) (int, error) {
	if n < 0 {
		return 0, ErrInvalidSize
	}

	return int(n), nil
}
