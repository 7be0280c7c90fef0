package version

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/Neswisoft/ruby/internal/loader"
)

// Version information for the rubyast CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// Format is the serialization format version the decoder accepts.
	Format = fmt.Sprintf("%d.%d.%d", loader.Version[0], loader.Version[1], loader.Version[2])

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)
