package lexer

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// KiriLexer splits source text into raw participle tokens. Comments and
// whitespace are matched here and dropped by the scanner, except doc
// comments which reach the parser.
var KiriLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"DocComment", `///[^\n]*`, nil},
		{"Comment", `//[^\n]*`, nil},
		{"BlockComment", `/\*([^*]|\*+[^*/])*\*+/`, nil},
		{"UnterminatedComment", `/\*[\s\S]*`, nil},

		// Literals (order matters: float before byte before int)
		{"Float", `[0-9]+\.[0-9]+([eE][-+]?[0-9]+)?`, nil},
		{"Byte", `[0-9]+b`, nil},
		{"Int", `0x[0-9a-fA-F]+|[0-9]+`, nil},
		{"String", `"(\\.|[^"\\\n])*"`, nil},
		{"UnterminatedString", `"(\\.|[^"\\\n])*`, nil},
		{"Char", `'(\\.|[^'\\\n])+'`, nil},

		// Keywords and identifiers
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_']*`, nil},

		// Operators, including the reserved punctuation runs
		{"Operator", `[-+*/%<>=!&|^~?@$:.\\#]+`, nil},

		// Brackets and separators
		{"Punct", `[(){}\[\],]`, nil},

		{"Whitespace", `[ \t\r\n]+`, nil},

		// Anything else is reported as a lexical error
		{"Invalid", `.`, nil},
	},
})
