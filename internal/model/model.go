package model

// Header - Represents the store file header data
//   - Count is the number of currently active records
//   - FirstActive and LastActive are the slot numbers of the active list head and tail, or -1 when the list is empty
//   - FreeHead is the slot number of the first free slot, or -1 when the store is full
//   - Capacity is the total number of data slots, fixed at creation time
type Header struct {
	Count       int32
	FirstActive int32
	LastActive  int32
	FreeHead    int32
	Capacity    int32
}

// Record - Represents the payload held by an active slot
type Record struct {
	Key  int32
	Name []byte
}

// Slot - Represents one storage unit in the file
//   - SlotNo is the 1-based slot number the slot was read from
//   - Next and Prev are slot number links, -1 when absent
//   - InUse is true when the slot holds an active record (Record.Key != -1)
type Slot struct {
	SlotNo int32
	Next   int32
	Prev   int32
	InUse  bool
	Record Record
}

// StorageParameters - Represents parameters specific for an opened store file
type StorageParameters struct {
	Capacity      int32
	SlotLength    int64
	NameLength    int64
	StoreFileSize int64
}
