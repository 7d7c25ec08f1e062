// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"evosim/internal/jsonlutil"
	"evosim/internal/output"
	"evosim/internal/simrun"
)

// StartResultJSONLWriter streams each replicate as one JSON line (v1).
func StartResultJSONLWriter(out io.Writer, bufSize int) (chan<- simrun.Result, <-chan error) {
	return jsonlutil.Start[simrun.Result](out, bufSize,
		func(enc *json.Encoder, r simrun.Result) error {
			return enc.Encode(output.ToAPILineage(r))
		},
		IsBrokenPipe,
	)
}
