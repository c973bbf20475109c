// Command parquet-page encodes values given on the command line into a parquet
// data page and describes the result.
//
//	parquet-page encode --type int32 --compression zstd 1 null 3
package main

import (
	"fmt"
	"os"
	"strings"

	color "github.com/logrusorgru/aurora/v3"
	"github.com/segmentio/cli"
	"github.com/segmentio/parquet-page/internal/debug"
)

func main() {
	cli.Exec(cli.CommandSet{
		"encode": cli.Command(encodeCommand),
	})
}

func perrorf(format string, args ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, color.Red(format).String(), args...)
}

func pdebugf(format string, args ...interface{}) {
	debug.Format(color.Gray(12, format).String(), args...)
}
