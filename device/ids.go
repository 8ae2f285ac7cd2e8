// Package device defines the capability model every input backend
// implements: input and output descriptors, device flags and status, the
// Device contract with its optional facets, per-device frame buffers and the
// device-type registry.
package device

import (
	"math"
	"strconv"
)

// InputID is a device-local handle to one input component.
type InputID uint64

// OutputID is a device-local handle to one output component.
type OutputID uint64

// SubDeviceID indexes a sub-device within its parent.
type SubDeviceID = int

const (
	InvalidInput  InputID  = math.MaxUint64
	InvalidOutput OutputID = math.MaxUint64
)

// Valid reports whether id is not the InvalidInput sentinel.
func (id InputID) Valid() bool { return id != InvalidInput }

func (id InputID) String() string {
	if id == InvalidInput {
		return "invalid"
	}
	return strconv.FormatUint(uint64(id), 10)
}

func (id OutputID) Valid() bool { return id != InvalidOutput }

// PlayerID identifies an input consumer.
type PlayerID uint64

// NoPlayer is used for bindings that are not specific to a player.
const NoPlayer PlayerID = 0
