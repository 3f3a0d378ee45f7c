package entries

// SelectedIndex maps the copy-mode state to the highlighted entry
// position. It returns -1 when copy mode is off, no cursor has been set,
// or there are no entries. Otherwise the cursor wraps with non-negative
// modulo, so cycling past either end of the list lands back inside
// [0, entryCount).
func SelectedIndex(copyMode bool, copyIndex *int, entryCount int) int {
	if !copyMode || copyIndex == nil || entryCount == 0 {
		return -1
	}
	i := *copyIndex % entryCount
	if i < 0 {
		i += entryCount
	}
	return i
}
