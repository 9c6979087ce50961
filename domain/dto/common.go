package dto

import (
	"bytes"
	"encoding/json"
)

// NullableID is a nullable reference field that still distinguishes an
// explicit JSON null from an absent key. Patch requests need the
// difference: null clears the reference, an absent key leaves it alone.
type NullableID struct {
	Set   bool  // key was present in the request body
	Value *uint // nil when the key was null
}

func NewNullableID(v *uint) NullableID {
	return NullableID{Set: true, Value: v}
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

func (n NullableID) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// IsZero lets omitzero drop unset fields when a patch is serialized.
func (n NullableID) IsZero() bool {
	return !n.Set
}
