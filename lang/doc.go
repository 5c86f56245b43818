// Package lang parses dotenv content into ordered, substituted key/value
// pairs.
//
// Parsing runs in two stages. The line classifier ([Scan], [ClassifyLine])
// splits content into [Entry] values, and the value resolver ([Resolve])
// turns each raw value into its final string. [Evaluate] drives both stages
// in file order against a running [Namespace], so later lines can refer to
// earlier ones.
//
// # Grammar
//
// Informal EBNF, one production per line of input:
//
//	Line       → Blank | Comment | Assignment
//	Blank      → Space*
//	Comment    → Space* '#' <any>*
//	Assignment → Space* ('export' Space+)? Key Space* '=' Space* Value Space*
//	Key        → [A-Za-z_] [A-Za-z0-9_]*
//	Value      → <rest of line, interpreted by the resolver>
//
// # Values
//
// The resolver makes a single left-to-right pass over a raw value:
//
//	'...'     copied verbatim, quotes dropped
//	"..."     quotes dropped, escapes and references apply
//	\$        literal '$' (also \\ \" \' and \ ; \n is a newline)
//	${NAME}   reference, NAME is everything up to '}'
//	$NAME     reference, NAME is the longest identifier after '$'
//
// A '$' that does not begin a reference is kept as is. There are no inline
// comments: a '#' inside a value is part of the value.
//
// # Precedence
//
// A reference is looked up in the [Environment] first, then in the
// [Namespace] of values resolved so far, and is empty when neither defines
// it. A variable already present in the environment therefore always wins
// over a definition in the file, wherever that definition appears.
//
// # Example
//
//	# database
//	export DB_HOST=localhost
//	DB_PORT = 5432
//	DB_URL="postgres://${DB_HOST}:$DB_PORT/app"
//	GREETING='hello $USER'   # kept literally, including this text
package lang
