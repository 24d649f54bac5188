package completion

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// FlagComplete prints every flag of the current command so shells still get
// suggestions when the default urfave/cli completion comes back empty.
func FlagComplete(_ context.Context, cmd *cli.Command) {
	w := cmd.Root().Writer
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			if len(name) == 1 {
				_, _ = fmt.Fprintln(w, "-"+name)
			} else {
				_, _ = fmt.Fprintln(w, "--"+name)
			}
		}
	}
}
