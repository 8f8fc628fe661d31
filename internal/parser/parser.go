// Package parser provides the syntax-tree parse capability over
// tree-sitter. It is the only package that owns tree lifetimes; callers
// consume a Source and close it once facts have been collected.
package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Parser parses TypeScript and TSX source files using tree-sitter.
type Parser struct {
	tsParser  *sitter.Parser
	tsxParser *sitter.Parser
}

// NewParser creates a parser with both grammars loaded.
func NewParser() *Parser {
	tsParser := sitter.NewParser()
	tsParser.SetLanguage(typescript.GetLanguage())

	tsxParser := sitter.NewParser()
	tsxParser.SetLanguage(tsx.GetLanguage())

	return &Parser{
		tsParser:  tsParser,
		tsxParser: tsxParser,
	}
}

// Source is a parsed file. Close releases the underlying tree.
type Source struct {
	Path  string
	Bytes []byte
	tree  *sitter.Tree
}

// Root returns the root node of the parse tree.
func (s *Source) Root() *sitter.Node {
	return s.tree.RootNode()
}

// Close releases the parse tree. The Source must not be used afterwards.
func (s *Source) Close() {
	if s.tree != nil {
		s.tree.Close()
		s.tree = nil
	}
}

// Parse parses source content. The grammar is chosen from the file
// extension: .tsx uses the TSX grammar, everything else the TypeScript
// grammar (which also accepts plain JavaScript).
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*Source, error) {
	parser := p.tsParser
	if strings.EqualFold(filepath.Ext(path), ".tsx") {
		parser = p.tsxParser
	}

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &Source{Path: path, Bytes: content, tree: tree}, nil
}

// SourceExtensions is the fixed probe order used when resolving module
// specifiers to concrete files.
var SourceExtensions = []string{".ts", ".tsx", ".js", ".jsx"}
