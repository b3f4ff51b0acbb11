package cli

import (
	"strings"

	"github.com/pkg/errors"
)

type (
	Args struct {
		Config      string          `arg:"--config,env:WADINFO_CONFIG" help:"YAML file with default options" placeholder:"FILE"`
		LogLevel    string          `arg:"--log-level,env:WADINFO_LOG_LEVEL" help:"debug, info, warn or error" placeholder:"LEVEL"`
		Info        *InfoCmd        `arg:"subcommand:info" help:"inspect a single WAD file"`
		Batch       *BatchCmd       `arg:"subcommand:batch" help:"inspect every WAD file in a directory"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse WAD files in a directory"`
	}
	Outputs struct {
		CSV     bool `arg:"--csv" help:"print title id, version, title key and file name"`
		Header  bool `arg:"--header" help:"print the header fields"`
		Offsets bool `arg:"--offsets" help:"print where each segment starts and ends"`
		JSON    bool `arg:"--json" help:"print a JSON record"`
	}
	InfoCmd struct {
		File string `arg:"-i,required" help:"path to WAD file" placeholder:"FILE"`
		Outputs
	}
	BatchCmd struct {
		Path string `arg:"--path" help:"directory to search [default: .]" placeholder:"DIR"`
		Outputs
	}
	InteractiveCmd struct {
		Path string `arg:"--path" help:"directory to browse [default: .]" placeholder:"DIR"`
	}
)

const DefaultPath = "."

var ErrNoOutput = errors.New("at least one of --csv, --header, --offsets or --json is required")

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Report what is inside WAD files without touching them.\n",
			"Reads the header, locates the certificate chain, ticket, title metadata,",
			"data and footer, and prints title id, version and encrypted title key.",
		},
		"\n",
	)
	des += "\n"
	return des
}

// Any reports whether some output was requested.
func (o Outputs) Any() bool {
	return o.CSV || o.Header || o.Offsets || o.JSON
}

// NeedsTitle reports whether the title fields have to be read.
func (o Outputs) NeedsTitle() bool {
	return o.CSV || o.JSON
}

func (o Outputs) merge(other Outputs) Outputs {
	return Outputs{
		CSV:     o.CSV || other.CSV,
		Header:  o.Header || other.Header,
		Offsets: o.Offsets || other.Offsets,
		JSON:    o.JSON || other.JSON,
	}
}

func (r Args) Validate() error {
	switch {
	case r.Info != nil && !r.Info.Outputs.Any():
		return errors.Wrap(ErrNoOutput, "info")
	case r.Batch != nil && !r.Batch.Outputs.Any():
		return errors.Wrap(ErrNoOutput, "batch")
	}
	return nil
}
