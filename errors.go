package bucketlist

import "fmt"

type NilCollidableError struct{}

func (e NilCollidableError) Error() string {
	return "collidable is nil"
}

type RecordStoreError struct {
	Op  string
	Err error
}

func (e RecordStoreError) Error() string {
	return fmt.Sprintf("record store %s failed: %v", e.Op, e.Err)
}

func (e RecordStoreError) Unwrap() error {
	return e.Err
}

type InvalidBucketSizeError struct {
	Size float64
}

func (e InvalidBucketSizeError) Error() string {
	return fmt.Sprintf("bucket size must be a positive finite number, got %v", e.Size)
}

type InvalidInsertModeError struct {
	Value string
}

func (e InvalidInsertModeError) Error() string {
	return fmt.Sprintf("unknown insert mode %q (want %q or %q)", e.Value, CornerMode, SpanMode)
}

type InvalidMaxSpanCellsError struct {
	Value int
}

func (e InvalidMaxSpanCellsError) Error() string {
	return fmt.Sprintf("max span cells must be at least 1, got %d", e.Value)
}

type UncomparableCollidableError struct {
	Type string
}

func (e UncomparableCollidableError) Error() string {
	return fmt.Sprintf("collidable of type %s is not comparable; use a pointer", e.Type)
}

type UnknownRecordError struct {
	ID RecordID
}

func (e UnknownRecordError) Error() string {
	return fmt.Sprintf("record %d is not live", e.ID)
}

type EntryCountError struct {
	Want, Got int
}

func (e EntryCountError) Error() string {
	return fmt.Sprintf("expected %d entries, got %d", e.Want, e.Got)
}

type NaNAABBError struct {
	AABB Rect
}

func (e NaNAABBError) Error() string {
	return fmt.Sprintf("collidable AABB %v has a NaN coordinate", e.AABB)
}
