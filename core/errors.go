// SPDX-License-Identifier: MIT
// Package core: error kinds shared by every engine package.
//
// Callers branch with errors.Is on the four kinds below. Every failure raised
// by a Graph is an *Error that wraps one kind and records the operation, the
// entity, the offending identifier and the graph scope, so the outer layer can
// build a message without parsing strings.

package core

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrNotFound indicates that a referenced node, edge or cluster does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID indicates that a creation collides with an existing id in the same scope.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrNoPath indicates that no route connects the requested pair.
	ErrNoPath = errors.New("no path")

	// ErrMalformedInput indicates bad identifiers, mismatched matrix headers,
	// ragged rows or unparsable values.
	ErrMalformedInput = errors.New("malformed input")
)

// Entity names what an Error refers to.
type Entity string

// Entities used in Error.
const (
	EntityNode    Entity = "node"
	EntityEdge    Entity = "edge"
	EntityCluster Entity = "cluster"
	EntityPath    Entity = "path"
	EntityMatrix  Entity = "matrix"
)

// Error is the structured failure returned by engine operations.
type Error struct {
	// Op is the operation that failed, e.g. "AddEdge".
	Op string

	// Kind is one of ErrNotFound, ErrDuplicateID, ErrNoPath, ErrMalformedInput.
	Kind error

	// Entity is what ID refers to.
	Entity Entity

	// ID is the offending identifier (for paths: "src->dst").
	ID string

	// Scope is the graph or registry the operation ran against.
	Scope string

	// Detail is optional free text for MalformedInput.
	Detail string
}

// Error implements error.
func (e *Error) Error() string {
	var msg string
	switch {
	case errors.Is(e.Kind, ErrNotFound):
		msg = fmt.Sprintf("%s %s not found", e.Entity, e.ID)
	case errors.Is(e.Kind, ErrDuplicateID):
		msg = fmt.Sprintf("%s %s already exists", e.Entity, e.ID)
	case errors.Is(e.Kind, ErrNoPath):
		msg = fmt.Sprintf("no path %s", e.ID)
	case e.ID == "":
		msg = fmt.Sprintf("%s: %v", e.Entity, e.Kind)
	default:
		msg = fmt.Sprintf("%s %s: %v", e.Entity, e.ID, e.Kind)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Scope != "" {
		msg += " in " + e.Scope
	}

	return e.Op + ": " + msg
}

// Unwrap exposes the kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// NotFoundError builds an ErrNotFound failure.
func NotFoundError(op string, entity Entity, id, scope string) *Error {
	return &Error{Op: op, Kind: ErrNotFound, Entity: entity, ID: id, Scope: scope}
}

// DuplicateError builds an ErrDuplicateID failure.
func DuplicateError(op string, entity Entity, id, scope string) *Error {
	return &Error{Op: op, Kind: ErrDuplicateID, Entity: entity, ID: id, Scope: scope}
}

// NoPathError builds an ErrNoPath failure for the pair src, dst.
func NoPathError(op string, src, dst ID, scope string) *Error {
	return &Error{Op: op, Kind: ErrNoPath, Entity: EntityPath, ID: fmt.Sprintf("%s->%s", src, dst), Scope: scope}
}

// MalformedError builds an ErrMalformedInput failure.
func MalformedError(op string, entity Entity, id, scope, detail string) *Error {
	return &Error{Op: op, Kind: ErrMalformedInput, Entity: entity, ID: id, Scope: scope, Detail: detail}
}

// KindOf returns the kind wrapped by err, or nil when err carries none.
func KindOf(err error) error {
	for _, kind := range []error{ErrNotFound, ErrDuplicateID, ErrNoPath, ErrMalformedInput} {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}
