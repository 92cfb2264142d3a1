package utils

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// PadByteSlice - Returns a copy of a, zero padded at the end up to length.
// If a is already length bytes or longer it is copied and cut to length.
func PadByteSlice(a []byte, length int64) (b []byte) {
	b = make([]byte, length)
	_ = copy(b, a)

	return
}

// TrimByteSlice - Returns a copy of a with trailing zero bytes removed
func TrimByteSlice(a []byte) (b []byte) {
	end := len(a)
	for end > 0 && a[end-1] == 0 {
		end--
	}

	b = make([]byte, end)
	_ = copy(b, a[:end])

	return
}
