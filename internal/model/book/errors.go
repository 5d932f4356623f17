package book

import (
	"errors"
	"fmt"
)

// ErrDataSource matches every failure to read or parse the catalog source.
var ErrDataSource = errors.New("book data source unavailable")

// DataSourceError reports which source failed and why.
type DataSourceError struct {
	Source string
	Err    error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("book data source %s: %v", e.Source, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDataSource) match any DataSourceError.
func (e *DataSourceError) Is(target error) bool {
	return target == ErrDataSource
}
