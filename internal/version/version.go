package version

import "fmt"

const Version = "0.3.1"

// String returns the printable version line.
func String() string {
	return fmt.Sprintf("GoMovie v%s", Version)
}
