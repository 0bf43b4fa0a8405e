// Package inspect extracts coarse metadata from a DDD file without decoding
// it: size, base filename and the first few bytes of content. It is the
// fallback used when no full tachograph decoder is available.
package inspect
