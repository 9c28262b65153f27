//go:build windows

package config

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

func isBadFileRune(sym rune) bool {
	return sym < 32 || strings.ContainsRune(`<>":/\|?*`, sym) || sym == os.PathListSeparator
}

// EnableColorOutput checks if colorized output is possible and
// enables VT100 sequence processing in Windows console (Windows 10 and later).
func EnableColorOutput(stream *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(stream.Fd())) {
		return false
	}
	if windows.RtlGetVersion().MajorVersion < 10 {
		return false
	}

	var mode uint32
	h := windows.Handle(stream.Fd())
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
