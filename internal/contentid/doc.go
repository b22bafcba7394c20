// Package contentid fingerprints file content for duplicate detection.
//
// The digest only needs to be collision-resistant for accidental duplicates,
// not adversarial input, so it uses xxHash64 over a bounded streaming read.
package contentid
