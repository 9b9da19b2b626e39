// Package source loads the input buffer the grammar runs over.
package source

import (
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"
	"golang.org/x/exp/mmap"
)

var log = commonlog.GetLogger("tally.source")

// Stdin is the path that selects standard input.
const Stdin = "-"

// Input is a fully materialized input file.
type Input struct {
	Name string
	Data []byte
}

// Open loads path into memory. Regular files are memory-mapped and copied
// into one buffer; Stdin reads standard input to the end.
func Open(path string) (*Input, error) {
	if path == Stdin || path == "" {
		return Read("<stdin>", os.Stdin)
	}

	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer r.Close()

	data := make([]byte, r.Len())
	if len(data) > 0 {
		if _, err := r.ReadAt(data, 0); err != nil && err != io.EOF {
			return nil, fmt.Errorf("read input: %w", err)
		}
	}
	log.Debugf("mapped %s (%d bytes)", path, len(data))

	return &Input{Name: path, Data: data}, nil
}

// Read loads everything r produces.
func Read(name string, r io.Reader) (*Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	log.Debugf("read %s (%d bytes)", name, len(data))
	return &Input{Name: name, Data: data}, nil
}
