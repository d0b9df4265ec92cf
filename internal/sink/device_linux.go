//go:build linux

package sink

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ConsoleDevices are probed in order by NewDevice
var ConsoleDevices = []string{"/dev/console", "/dev/tty1", "/dev/ttyS0"}

// NewDevice opens the first usable system console device and returns a
// stream sink writing to it. Devices that open but are not terminals
// are skipped. Useful for early-boot style environments where stderr is
// not connected to anything visible.
func NewDevice() (*Stream, error) {
	for _, path := range ConsoleDevices {
		fd, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			continue
		}
		if _, err := unix.IoctlGetTermios(int(fd.Fd()), unix.TCGETS); err != nil {
			fd.Close()
			continue
		}
		return NewStream(fd), nil
	}
	return nil, fmt.Errorf("no console device available")
}
