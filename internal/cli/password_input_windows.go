//go:build windows

package cli

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

func readHiddenLine(terminal *os.File) (string, error) {
	if terminal == nil {
		return "", errNoTerminal
	}

	handle := windows.Handle(terminal.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return "", fmt.Errorf("%w: %v", errNoTerminal, err)
	}
	if err := windows.SetConsoleMode(handle, mode&^windows.ENABLE_ECHO_INPUT); err != nil {
		return "", err
	}
	defer windows.SetConsoleMode(handle, mode)

	return readLine(terminal)
}
