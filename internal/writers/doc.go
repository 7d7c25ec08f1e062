// Package writers turns finished replicates into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV rows, pretty panels,
//     divergence diffs, JSON/JSONL/FASTA).
//   - The core library stays domain-only; the pipeline stays
//     orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
