// Package cursortheme resolves named XDG cursor themes into loadable cursor
// icons and extracts RGBA pixel frames from them at a requested display size.
//
// Themes are searched across the standard XDG icon roots (user directories
// before system directories) and merged along the theme's Inherits chain.
// Two on-disk icon formats are supported behind one contract: the legacy
// Xcursor binary format (a theme's cursors/ directory) and the per-frame SVG
// format (cursors_scalable/, as shipped by recent KDE themes). Callers load a
// theme once, look up shapes by name, and extract frames on demand:
//
//	theme, err := cursortheme.Load("Breeze_Light")
//	if err != nil {
//		// theme not installed anywhere in the search path
//	}
//	icon, ok := theme.Icon("wait")
//	frames, err := icon.Frames(48)
//
// The package never caches rendered pixels and never writes to the
// filesystem. Frame sequencing and playback timing are the caller's
// responsibility.
package cursortheme
