package lst

import (
	"fmt"
	"time"
)

// FormatOffset renders a UTC offset as a signed "+hh:mm:ss" string.
func FormatOffset(offset time.Duration) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	offset = offset.Round(time.Second)
	h := offset / time.Hour
	m := (offset % time.Hour) / time.Minute
	s := (offset % time.Minute) / time.Second
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}
