// Package localstore persists small pieces of client state as key/value
// pairs, the durable counterpart of the hosted client's localStorage.
package localstore

import "errors"

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("localstore: key not found")
