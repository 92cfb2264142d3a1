package conf

// SlotLength - Length of one storage unit in the file. The header and every data slot
// occupy one unit each, the unit being the larger of the two layouts (the slot layout).
const SlotLength int64 = 42

// HeaderLength - Length of the header region at the start of the file, padded up to
// one full storage unit so slot number i is always found at SlotLength * i.
const HeaderLength int64 = SlotLength

// CountOffset - Header offset to the number of active records - 4 bytes
const CountOffset int64 = 0

// FirstActiveOffset - Header offset to the slot number of the active list head - 4 bytes
const FirstActiveOffset int64 = 4

// LastActiveOffset - Header offset to the slot number of the active list tail - 4 bytes
const LastActiveOffset int64 = 8

// FreeHeadOffset - Header offset to the slot number of the first free slot - 4 bytes
const FreeHeadOffset int64 = 12

// CapacityOffset - Header offset to the total number of data slots - 4 bytes
const CapacityOffset int64 = 16

// NextOffset - Slot offset to the next link - 4 bytes
const NextOffset int64 = 0

// PrevOffset - Slot offset to the previous link - 4 bytes
const PrevOffset int64 = 4

// KeyOffset - Slot offset to the record key - 4 bytes
const KeyOffset int64 = 8

// NameOffset - Slot offset to the record name - 30 bytes
const NameOffset int64 = 12

// NameLength - Fixed width of the name field, not guaranteed to be zero terminated
// when the name fills the field exactly
const NameLength int64 = 30

// NilLink - Link value denoting the absence of a linked slot
const NilLink int32 = -1

// FreeKey - Key value reserved to mark a slot as free
const FreeKey int32 = -1
