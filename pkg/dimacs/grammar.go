package dimacs

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// edgeLine is "e <u> <v>"; anything after the two endpoints is ignored
type edgeLine struct {
	U     int      `"e" @Int`
	V     int      `@Int`
	Extra []string `@(Int | Ident | Punct)*`
}

// problemLine is "p <format> <vertices> <edges>"
type problemLine struct {
	Format   string   `"p" @Ident`
	Vertices int      `@Int`
	Edges    int      `@Int`
	Extra    []string `@(Int | Ident | Punct)*`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{"Int", `[-+]?\d+`},
	{"Ident", `[A-Za-z_][A-Za-z0-9_.]*`},
	{"Punct", `[^\s]`},
	{"whitespace", `\s+`},
})

var (
	parseEdgeLine    = participle.MustBuild[edgeLine](participle.Lexer(lineLexer))
	parseProblemLine = participle.MustBuild[problemLine](participle.Lexer(lineLexer))
)
