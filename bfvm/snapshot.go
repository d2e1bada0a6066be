package bfvm

import (
	"encoding/gob"
	"io"
)

// Snapshot writes the machine state: program, tape, pointers and step
// count. Input, output and options are not part of the state; a restored
// VM keeps its own.
func (v *VM) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return nil
}

func (v *VM) Restore(r io.Reader) error {
	dec := gob.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	return nil
}
