package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseUserID reads a decimal user id. Leading zeros are kept decimal, so
// "010" is user 10; prefixes like 0x and digit separators are rejected.
func ParseUserID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("user id %q: %w", s, err)
	}
	return id, nil
}
