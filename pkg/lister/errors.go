package lister

import "fmt"

// PermissionError is returned when the target directory cannot be read.
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s: %v", e.Path, e.Err)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}

// NotDirectoryError is returned when the target path is missing or is not a directory.
type NotDirectoryError struct {
	Path string
	Err  error
}

func (e *NotDirectoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("not a directory: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("not a directory: %s", e.Path)
}

func (e *NotDirectoryError) Unwrap() error {
	return e.Err
}
