package autocomplete

import (
	"regexp"
	"strings"

	"collabpad/internal/models"
)

var lastWordRE = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*$`)

// Suggest returns a snippet for the identifier immediately before the cursor.
// Rules exist for Python only; everything else gets no suggestion. A cursor
// position of zero or past the end means "end of the code".
func Suggest(req models.AutocompleteRequest) string {
	if !strings.EqualFold(req.Language, "python") {
		return ""
	}

	pos := req.CursorPosition
	if pos <= 0 || pos > len(req.Code) {
		pos = len(req.Code)
	}

	word := strings.ToLower(lastWordRE.FindString(req.Code[:pos]))
	switch {
	case strings.HasPrefix(word, "for"):
		return "for i in range(): {\n    \n}\n"
	case strings.HasPrefix(word, "if"):
		return "if (): {\n    \n}\n"
	case strings.HasPrefix(word, "wh"):
		return "while (): {\n    \n}\n"
	case strings.HasPrefix(word, "de"):
		return "def (): {\n    \n}\n"
	case strings.HasPrefix(word, "pr"):
		return "print()"
	default:
		return ""
	}
}
