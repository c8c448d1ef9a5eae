// Package datetools provides timezone-aware date utilities: a guaranteed
// aware "now", fuzzy normalization of heterogeneous date inputs, local
// midnight boundaries, and human-readable relative time spans such as
// "3 years, 2 months".
//
// Every time.Time leaving this package carries the timezone it was
// resolved against. The process's current zone is configured once at
// startup through the timezone package (or internal/profile) and consulted
// wherever a caller asks for "local".
package datetools
