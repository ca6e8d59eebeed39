package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidFileType         = errors.New("invalid file type")
	ErrFileNotFound            = errors.New("file not found")
	ErrMissingColumn           = errors.New("missing column")
	ErrUnrecognizedPreventable = errors.New("unrecognized preventable value")
	ErrInvalidValue            = errors.New("invalid value")
	ErrInvalidPeriod           = errors.New("invalid reporting period")
)

// InvalidFileTypeError marks a report directory entry that is not a CSV file.
type InvalidFileTypeError struct {
	Path string
}

func (e *InvalidFileTypeError) Error() string {
	return fmt.Sprintf("%s is an invalid file type", e.Path)
}

func (e *InvalidFileTypeError) Is(target error) bool {
	return target == ErrInvalidFileType
}

type FileNotFoundError struct {
	Name      string
	Directory string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("%s not found in %s", e.Name, e.Directory)
}

func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

// MissingColumnError lists the required columns absent from a parsed CSV.
type MissingColumnError struct {
	Path    string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Path, strings.Join(e.Columns, ", "))
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// InvalidValueError reports a cell that could not be converted to its column type.
type InvalidValueError struct {
	Path   string
	Line   int
	Column string
	Value  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s:%d: column %q: cannot parse %q", e.Path, e.Line, e.Column, e.Value)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
