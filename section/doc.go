// Package section defines the low-level binary structures that follow the
// mean-speed bytes in a PSP blob: the two-byte profile header describing
// the time resolution and the set of days carrying a daily profile.
package section
