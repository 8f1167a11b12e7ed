// Package domain groups the entity packages and the error kind they share.
package domain

// InvalidError marks a violated entity invariant. The transport layer
// reports these as client errors rather than internal failures.
type InvalidError string

func (e InvalidError) Error() string { return string(e) }
