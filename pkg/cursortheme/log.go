package cursortheme

import "github.com/rs/zerolog"

// pkgLog receives diagnostic output from theme discovery. Discarded by
// default; library consumers opt in via SetLogger.
var pkgLog = zerolog.Nop()

// SetLogger routes the package's debug output (skipped directories, rejected
// symlinks, cyclic inheritance) to the given logger. Call it before Load;
// the package never logs above debug level.
func SetLogger(l zerolog.Logger) {
	pkgLog = l
}
