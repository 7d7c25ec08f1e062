// internal/output/json.go
package output

import (
	"io"

	"evosim/internal/jsonutil"
	"evosim/internal/simrun"
	"evosim/pkg/api"
)

// ToAPILineage converts a finished replicate to the stable wire schema (v1).
func ToAPILineage(r simrun.Result) api.LineageV1 {
	v := api.LineageV1{
		Replicate:   r.Index,
		Seed:        r.Seed,
		Ancestor:    r.Ancestor,
		B:           r.B,
		C:           r.C,
		Length:      r.Length,
		PairLength:  r.PairLength,
		Differences: r.Differences,
	}
	if r.Aligned {
		score, ident := r.Score, r.Identity
		v.AlignedB = r.AlignedB
		v.AlignedC = r.AlignedC
		v.Score = &score
		v.Identity = &ident
	}
	return v
}

func toAPILineages(list []simrun.Result) []api.LineageV1 {
	out := make([]api.LineageV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPILineage(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 replicates (pretty-indented).
func WriteJSON(w io.Writer, list []simrun.Result) error {
	return jsonutil.EncodePretty(w, toAPILineages(list))
}
