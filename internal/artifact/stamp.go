package artifact

import (
	"strings"
	"time"
)

// stampLayout renders as " — Oct 18 (14-05s)" before substitution.
const stampLayout = " — Jan 02 (15-04s)"

// stampReplacer keeps the suffix usable in file names. Existing archives are
// named with exactly these substitutions, so they must not change.
var stampReplacer = strings.NewReplacer("/", ".", "-", "h ")

// Stamp appends the archive timestamp to name, e.g. "paper — Oct 18 (14h 05s)".
func Stamp(name string, now time.Time) string {
	return name + stampReplacer.Replace(now.Format(stampLayout))
}
