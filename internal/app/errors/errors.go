package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidPollInterval = errors.New("poll interval must be positive")
	ErrInvalidRollInterval = errors.New("roll interval must not be negative")
	ErrInvalidScaleMode    = errors.New("invalid scale mode")
	ErrInvalidLogsBuffer   = errors.New("bus buffer must be positive")

	ErrNoChannelTitles       = errors.New("no channel titles found")
	ErrCorruptedRecord       = errors.New("corrupted or incomplete record")
	ErrChannelCountMismatch  = errors.New("record channel count does not match titles")
	ErrColumnNotFound        = errors.New("column not found")
	ErrNoData                = errors.New("log file contains no data")
	ErrFileNotFound          = errors.New("log file does not exist")
	ErrUnsupportedTransition = errors.New("unsupported session transition")

	ErrLogPathRequired = errors.New("log file path is required")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
