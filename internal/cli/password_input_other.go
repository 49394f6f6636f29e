//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package cli

import "os"

func readHiddenLine(_ *os.File) (string, error) {
	return "", errNoTerminal
}
