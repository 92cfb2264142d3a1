package storage

// NotFound - Custom error to inform that no record with a matching key was found
type NotFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NotFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// DuplicateKey - Custom error to inform that the key is already held by an active record
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that the key is already in use
func (E DuplicateKey) Error() string {
	if E.msg == "" {
		return "key already exists"
	}
	return E.msg
}

// StoreFull - Custom error to inform that the store file is full and can't take more records
type StoreFull struct {
	msg string
}

// Error - Used to notify that the store file is full
func (E StoreFull) Error() string {
	if E.msg == "" {
		return "store file full"
	}
	return E.msg
}
