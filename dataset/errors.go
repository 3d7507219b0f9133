// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedRecord indicates a CSV record that cannot describe a node or
// an edge (too few fields, empty id). Check with errors.Is.
var ErrMalformedRecord = errors.New("dataset: malformed record")

// ErrNilGraph indicates that ReadNodes or ReadEdges received a nil store.
var ErrNilGraph = errors.New("dataset: graph is nil")

// recordErrorf wraps err with "<source>:<line>: [record]" context.
func recordErrorf(source string, line int, record []string, err error) error {
	return fmt.Errorf("%s:%d: [%s]: %w", source, line, strings.Join(record, ","), err)
}
