package annotation

import (
	"context"
	"io"

	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
)

// RegionHasher computes the digest of a closed hash region.
type RegionHasher interface {
	Resolve(ctx context.Context, dialect, region string) (string, error)
}

// Parser parses annotated units for one hashing dialect.
type Parser struct {
	dialect string
	hasher  RegionHasher
}

// NewParser creates a parser that hashes regions with hasher under dialect.
func NewParser(dialect string, hasher RegionHasher) *Parser {
	return &Parser{dialect: dialect, hasher: hasher}
}

// Parse reads and parses one unit. A read failure is reported as an input
// problem on the result. The returned error is non-nil only when hashing a
// region failed; no partial result is returned in that case.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		result := newResult()
		result.addProblem(ferrors.InputError("Could not read source"))
		return result, nil
	}
	return p.ParseString(ctx, string(data))
}

// ParseString parses the text of one unit.
func (p *Parser) ParseString(ctx context.Context, text string) (*Result, error) {
	result := newResult()

	scan := lineScan{dialect: p.dialect, hasher: p.hasher, result: result}
	for _, line := range splitSourceLines(text) {
		if err := scan.feed(ctx, line); err != nil {
			return nil, err
		}
	}
	joined := scan.finish()

	result.Source = excise(joined, result)
	checkRequired(result)
	return result, nil
}

func newResult() *Result {
	return &Result{Commands: make(map[string]string)}
}
