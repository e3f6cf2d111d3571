package cmd

import (
	"errors"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// stderrSyncable reports whether stderr is a terminal or a regular file.
func stderrSyncable() bool {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return true
	}
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func isInvalidArgument(err error) bool {
	if errors.Is(err, syscall.EINVAL) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "invalid argument")
}
