// Command timber re-stamps text lines with a glog-style prefix. It reads
// lines from stdin and re-emits each one to stderr through the logger at
// a chosen severity:
//
//	tail -f app.log | timber --level=warning -v=debug
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/crimson-sun/timber/pkg/timber"
)

func main() {
	levelName := pflag.String("level", "info", "Severity to stamp onto each line.")
	timber.RegisterFlags(pflag.CommandLine)
	pflag.Parse()

	if err := timber.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := timber.ParseSeverity(*levelName)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "timber"))
		os.Exit(2)
	}

	if err := restamp(os.Stdin, level); err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "timber"))
		os.Exit(1)
	}
}

// restamp re-emits each input line through the logger at the given
// severity. Lines below the configured threshold are dropped.
func restamp(r io.Reader, level timber.Severity) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		timber.Log(level, "%s", sc.Text())
	}
	return errors.Wrap(sc.Err(), "read input")
}
