package editor

const (
	maxSizeDigits   = 3
	maxSaveNameLen  = 11
	maxCommentChars = 19
)

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func all(s string, pred func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return false
		}
	}
	return true
}

// appendChecked appends text to dst when every byte passes pred and the
// result stays within limit. Anything else is dropped whole.
func appendChecked(dst, text string, limit int, pred func(byte) bool) string {
	if !all(text, pred) || len(dst)+len(text) > limit {
		return dst
	}
	return dst + text
}

func appendNumeric(dst, text string) string {
	return appendChecked(dst, text, maxSizeDigits, isDigit)
}

func appendSaveName(dst, text string) string {
	return appendChecked(dst, text, maxSaveNameLen, isAlnum)
}

// appendComment accepts text that is either all alphanumeric or all
// whitespace.
func appendComment(dst, text string) string {
	if all(text, isSpace) {
		return appendChecked(dst, text, maxCommentChars, isSpace)
	}
	return appendChecked(dst, text, maxCommentChars, isAlnum)
}

func popLast(s string) string {
	if s == "" {
		return s
	}
	return s[:len(s)-1]
}
