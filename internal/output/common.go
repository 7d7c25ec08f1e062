package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "replicate\tseed\tlength\tpair_length\tdifferences\tscore\tidentity"

// TSVHeaderSeqs extends TSVHeader with the sequence columns emitted
// under --seqs.
const TSVHeaderSeqs = TSVHeader + "\tancestor\tb\tc"
