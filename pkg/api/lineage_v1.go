// pkg/api/lineage_v1.go
package api

// LineageV1 is the stable JSON/JSONL schema for one simulated replicate.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type LineageV1 struct {
	Replicate   int    `json:"replicate"`
	Seed        int64  `json:"seed"`
	Ancestor    string `json:"ancestor"`
	B           string `json:"b"`
	C           string `json:"c"`
	Length      int    `json:"length"`      // ancestor length
	PairLength  int    `json:"pair_length"` // B/C length after indels
	Differences int    `json:"differences"` // mismatching B/C columns

	// Recovered alignment, present only when requested.
	AlignedB string   `json:"aligned_b,omitempty"`
	AlignedC string   `json:"aligned_c,omitempty"`
	Score    *float64 `json:"score,omitempty"`
	Identity *float64 `json:"identity,omitempty"`
}

// AlignmentV1 is the stable JSON schema for a standalone pairwise
// alignment.
type AlignmentV1 struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	AlignedA string  `json:"aligned_a"`
	AlignedB string  `json:"aligned_b"`
	Score    float64 `json:"score"`
	Identity float64 `json:"identity"`
}
