package dto

import "strconv"

// IDs are snowflakes and exceed the range JavaScript numbers represent
// exactly, so they cross the wire as strings.
func idString(id *int64) *string {
	if id == nil {
		return nil
	}
	s := strconv.FormatInt(*id, 10)
	return &s
}

// ParseID parses a snowflake ID sent as a string.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
