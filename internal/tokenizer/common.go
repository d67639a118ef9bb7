// Package tokenizer extracts key=value pairs from raw message bodies that
// plugins were unable to recognise as a known structured dialect. It backs
// the text-heuristic stage of the plugin pipeline: heuristic KV, logfmt,
// and access-log extraction, merged by CombinedExtract.
package tokenizer

// Character classification functions shared across tokenizers.

// IsLetter returns true if c is an ASCII letter (A-Z or a-z).
func IsLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// IsDigit returns true if c is an ASCII digit (0-9).
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsHexDigit returns true if c is a hex digit (0-9 or a-f).
func IsHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

// IsWhitespace returns true if c is ASCII whitespace.
func IsWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
