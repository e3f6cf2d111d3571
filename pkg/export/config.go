package export

import (
	"io"
	"os"
	"time"

	"codechunk/pkg/ignore"

	"github.com/spf13/afero"
)

// Arguments holds the options for one export run.
type Arguments struct {
	Root             string      // Directory to export.
	OutputBase       string      // Base name of the numbered output files.
	OutputDir        string      // Directory receiving the output files.
	MaxChunkChars    int         // Character budget of one output file.
	MaxFilePartChars int         // Character budget of one file part.
	MaxDepth         int         // Depth limit of the tree diagram.
	Ignore           *ignore.Set // Names excluded from traversal and output.

	Fs     afero.Fs         // Filesystem for reading the root and writing chunks. Defaults to the OS.
	Now    func() time.Time // Clock for the generation timestamp. Defaults to time.Now.
	Stdout io.Writer        // Receives one confirmation line per written chunk. Defaults to os.Stdout.
}

// withDefaults fills zero-valued fields.
func (a Arguments) withDefaults() Arguments {
	if a.OutputBase == "" {
		a.OutputBase = DefaultOutputBase
	}
	if a.OutputDir == "" {
		a.OutputDir = "."
	}
	if a.MaxChunkChars <= 0 {
		a.MaxChunkChars = DefaultMaxChunkChars
	}
	if a.MaxFilePartChars <= 0 {
		a.MaxFilePartChars = DefaultMaxFilePartChars
	}
	if a.MaxDepth < 0 {
		a.MaxDepth = DefaultMaxDepth
	}
	if a.Ignore == nil {
		a.Ignore = ignore.Default()
	}
	if a.Fs == nil {
		a.Fs = afero.NewOsFs()
	}
	if a.Now == nil {
		a.Now = time.Now
	}
	if a.Stdout == nil {
		a.Stdout = os.Stdout
	}
	return a
}
