package apperror

import "errors"

var (
	ErrSaveNotFound       = errors.New("save not found")
	ErrCorruptSave        = errors.New("save record is corrupt")
	ErrUnsupportedVersion = errors.New("unsupported save version")
	ErrTopologyDrift      = errors.New("diagonal tile table out of sync with topology")
	ErrUnknownDriver      = errors.New("unknown storage driver")
)
