// Package cas is a content-addressed store for puzzle states. Items are
// serialized and keyed by the 64-bit farm hash of their bytes, so the same
// state always lands under the same Hash.
package cas

import (
	"bytes"
	"fmt"
	"io"
)

type CAS interface {
	Put(item Hashable) (Hash, error)
	Has(hash Hash) bool
	getValue(hash Hash) (bool, []byte, error)
}

type Serde interface {
	Serialize(w io.Writer) error
	Deserialize(r io.Reader) error
}

type Hashable interface {
	Serde
}

type Hash uint64

func (h Hash) String() string {
	return fmt.Sprintf("0x%016x", uint64(h))
}

// Retrieve loads the item stored under hash into a fresh T.
func Retrieve[T any, PT interface {
	*T
	Hashable
}](c CAS, hash Hash) (*T, error) {
	has, data, err := c.getValue(hash)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, fmt.Errorf("hash not found in CAS: %s", hash)
	}
	out := new(T)
	if err := PT(out).Deserialize(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("deserializing %s: %w", hash, err)
	}
	return out, nil
}
