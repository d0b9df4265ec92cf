//go:build !linux

package sink

import "fmt"

// NewDevice is unsupported outside linux
func NewDevice() (*Stream, error) {
	return nil, fmt.Errorf("console device sink requires linux")
}
