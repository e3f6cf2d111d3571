package cmd

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IsInvalidArgument(t *testing.T) {
	wrapped := &os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.EINVAL}
	assert.True(t, isInvalidArgument(wrapped))
	assert.True(t, isInvalidArgument(fmt.Errorf("sync /dev/stderr: %w", wrapped)))
	assert.True(t, isInvalidArgument(errors.New("sync /dev/stdout: Invalid argument")))
	assert.False(t, isInvalidArgument(errors.New("sync /dev/stderr: bad file descriptor")))
}
