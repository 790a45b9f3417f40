package format

import (
	"strconv"

	krformat "github.com/Dorico-Dynamics/txova-go-krformat"
)

// fileSizeUnits are the byte-size units in steps of 1024.
var fileSizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FileSize formats a byte count in the largest unit that keeps the value at or above 1.
// Bytes are shown without decimals, larger units with one: 512B, 1.5MB.
func FileSize[N krformat.Number](bytes N) string {
	size := float64(bytes)
	unit := 0

	for size >= 1024 && unit < len(fileSizeUnits)-1 {
		size /= 1024
		unit++
	}

	precision := 1
	if unit == 0 {
		precision = 0
	}

	return strconv.FormatFloat(size, 'f', precision, 64) + fileSizeUnits[unit]
}
