package timber

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/crimson-sun/timber/internal/config"
)

const defaultVerbosityName = "info"

// verbosity is the externally visible threshold value. RegisterFlags
// binds it to --verbosity; SetLevel writes it back so flag state and
// programmatic state stay consistent.
var verbosity = defaultVerbosityName

// RegisterFlags defines the --verbosity/-v flag on fs. Call before
// parsing, then Init once parsing completes.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&verbosity, "verbosity", "v", verbosity,
		"Minimum severity that will be logged.")
}

// Init reconciles the parsed --verbosity value into the active
// threshold. When the flag kept its default, the TIMBER_VERBOSITY
// environment variable is consulted instead. Call once, after flag
// parsing.
func Init() error {
	name := verbosity
	if name == defaultVerbosityName {
		if v := config.Load().Verbosity; v != "" {
			name = v
		}
	}
	s, err := ParseSeverity(name)
	if err != nil {
		return errors.Wrap(err, "timber: init")
	}
	SetLevel(s)
	return nil
}

func setVerbosityFlag(s Severity) {
	verbosity = strings.ToLower(s.String())
}
