// Package repository implements MongoDB persistence for every resource.
// Sentinel errors let handlers distinguish failure classes: ErrNotFound
// maps to 404 and ErrEmailExists to 409. All other store errors propagate
// unmodified.
package repository

import "errors"

// ErrNotFound is returned when no document matches the given id (or the
// id plus ownership scope, which is deliberately indistinguishable).
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when a user insert violates the unique
// email index.
var ErrEmailExists = errors.New("email already exists")
