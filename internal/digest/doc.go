// Package digest computes several message digests over a single read of a
// byte stream and formats them for sidecar files.
//
// Only the standard algorithms are supported: MD5, SHA-1, SHA-256 and SHA-512.
package digest
