package filelinkedlist

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// DuplicateKey - Custom error to inform that a record with the same key is already active
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

// StoreFileFull - Custom error to inform that the store file is full and can't take more records
type StoreFileFull struct {
	msg string
}

// Error - Used to notify that the store file is full
func (E StoreFileFull) Error() string {
	if E.msg == "" {
		return "store file full"
	}
	return E.msg
}
