package errors

// Error codes for the Kiri front end
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0100-E0199: Syntax errors (parser, lexer and layout)
// E0800-E0899: Warning codes

const (
	// E0100: No grammar alternative matches the next token
	ErrorUnexpectedToken = "E0100"

	// E0101: Input ended in the middle of an expression
	ErrorUnexpectedEOF = "E0101"

	// E0102: Recognized but unimplemented syntax (tuples, unit patterns)
	ErrorUnsupportedSyntax = "E0102"

	// E0103: Lexical errors forwarded from the lexer
	ErrorLexical = "E0103"

	// E0104: Indentation and bracket errors forwarded from the layout pass
	ErrorLayout = "E0104"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedToken:
		return "Token does not fit the grammar at this point"
	case ErrorUnexpectedEOF:
		return "Input ended before the expression was complete"
	case ErrorUnsupportedSyntax:
		return "Syntax is recognized but not supported yet"
	case ErrorLexical:
		return "Source text could not be split into tokens"
	case ErrorLayout:
		return "Brackets or indentation do not line up"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code >= "E0800" && code < "E0900" || code != "" && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code == ErrorLexical:
		return "Lexer"
	case code == ErrorLayout:
		return "Layout"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case IsWarning(code):
		return "Warning"
	default:
		return "Unknown"
	}
}
