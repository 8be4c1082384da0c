package kernel

import "strings"

// CodeLabel is a code with its display name, e.g. {"IN", "India"} for a
// country or {"DL", "Delhi"} for a state.
type CodeLabel struct {
	Code  string `json:"value"`
	Label string `json:"label"`
}

func (c CodeLabel) IsEmpty() bool {
	return strings.TrimSpace(c.Code) == "" && strings.TrimSpace(c.Label) == ""
}
