package msws

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// State is a snapshot of a generator. Restoring it continues the stream
// from exactly where the snapshot was taken.
type State struct {
	X uint64 // running square
	W uint64 // Weyl sequence
	S uint64 // increment
}

// State returns a copy of the generator's current state.
func (r *Rand) State() State {
	return State{X: r.x, W: r.w, S: r.s}
}

// Restore rebuilds a generator from a snapshot. The increment is checked
// with the same rules New applies to a seed.
func Restore(st State) (*Rand, error) {
	if err := validate(st.S); err != nil {
		return nil, err
	}
	return &Rand{x: st.X, w: st.W, s: st.S}, nil
}

type stateJSON struct {
	X string `json:"x"`
	W string `json:"w"`
	S string `json:"s"`
}

// MarshalJSON encodes each word as a 0x-prefixed hex string so the values
// survive decoders that read numbers as float64.
func (st State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON{
		X: hexWord(st.X),
		W: hexWord(st.W),
		S: hexWord(st.S),
	})
}

func (st *State) UnmarshalJSON(data []byte) error {
	var raw stateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out State
	fields := []struct {
		name string
		src  string
		dst  *uint64
	}{
		{"x", raw.X, &out.X},
		{"w", raw.W, &out.W},
		{"s", raw.S, &out.S},
	}
	for _, f := range fields {
		v, err := strconv.ParseUint(f.src, 0, 64)
		if err != nil {
			return fmt.Errorf("decode state %s: %w", f.name, err)
		}
		*f.dst = v
	}

	*st = out
	return nil
}

func hexWord(v uint64) string {
	return fmt.Sprintf("0x%016x", v)
}
