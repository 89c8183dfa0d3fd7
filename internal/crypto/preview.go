package crypto

// EncryptedContentPlaceholder is shown in conversation previews in place of
// a body that looks like ciphertext. Previews are rendered in contexts with
// no session keys (list views, push payloads), so the body cannot be
// decrypted there even by its rightful reader.
const EncryptedContentPlaceholder = "[Encrypted message]"

// encryptedLengthThreshold is the minimum body length considered possible
// ciphertext. RSA-2048 OAEP ciphertext encodes to 344 base64 characters;
// real chat messages under 100 characters with no spaces are rare enough.
const encryptedLengthThreshold = 100

// LooksEncrypted reports whether content is plausibly transport-encoded
// ciphertext: at least encryptedLengthThreshold bytes and drawn entirely
// from the standard base64 alphabet. It is a heuristic over stored bodies
// that predate any structured envelope, so both false positives (a long
// unbroken base64-ish string someone typed) and false negatives are
// possible. Use it for display decisions only, never for trust decisions.
func LooksEncrypted(content string) bool {
	if len(content) < encryptedLengthThreshold {
		return false
	}
	for i := 0; i < len(content); i++ {
		c := content[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '+' || c == '/' || c == '=':
		default:
			return false
		}
	}
	return true
}

// ClassifyForPreview maps a stored message body to its preview form:
// [EncryptedContentPlaceholder] when the body looks like ciphertext, the
// body itself otherwise. Legacy plaintext threads keep readable previews.
func ClassifyForPreview(content string) string {
	if LooksEncrypted(content) {
		return EncryptedContentPlaceholder
	}
	return content
}
