package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GetUsesLdflags(t *testing.T) {
	oldVersion, oldCommit, oldTime := Version, Commit, BuildTime
	defer func() { Version, Commit, BuildTime = oldVersion, oldCommit, oldTime }()

	Version, Commit, BuildTime = "1.2.3", "abcdefg", "2024-04-27T15:04:05Z"
	info := Get()

	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abcdefg", info.Commit)
	assert.Equal(t, "2024-04-27T15:04:05Z", info.BuildTime)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.True(t, strings.HasPrefix(info.String(), "codechunk 1.2.3 (commit abcdefg"))
}

func Test_ShortRevision(t *testing.T) {
	assert.Equal(t, "0123456789ab", shortRevision("0123456789abcdef0123"))
	assert.Equal(t, "abc", shortRevision("abc"))
}
