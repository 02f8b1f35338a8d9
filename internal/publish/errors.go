package publish

import (
	"errors"
	"fmt"
)

// Stage names a step of the publication state machine.
type Stage string

// Publication stages, in order.
const (
	StageReceived      Stage = "received"
	StageNormalized    Stage = "normalized"
	StageCreated       Stage = "created"
	StageInventorySet  Stage = "inventory_set"
	StageMediaAttached Stage = "media_attached"
	StageComplete      Stage = "complete"
)

// ErrNoTaxonomy is returned by ResolveProperties when the listing carries no
// taxonomy_id to look properties up by.
var ErrNoTaxonomy = errors.New("listing has no taxonomy_id")

// InvalidFieldError is caller input that failed normalization. Nothing has
// been sent to Etsy when it is returned.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

// StageError is a failure at Stage. ListingID is set once the listing has
// been created, so the caller can resume without creating it again.
type StageError struct {
	Stage     Stage
	ListingID int64
	Err       error
}

func (e *StageError) Error() string {
	if e.ListingID != 0 {
		return fmt.Sprintf("%s failed for listing %d: %v", e.Stage, e.ListingID, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
