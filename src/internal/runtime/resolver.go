package runtime

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Request is a parsed version request. ExactToken is compared against
// VersionRecord.Raw; Range against VersionRecord.Ordering.
type Request struct {
	Expression string
	ExactToken string
	Range      *semver.Constraints
}

// NewRequest parses rangeExpr and builds a Request
func NewRequest(expression, exactToken, rangeExpr string) (Request, error) {
	constraint, err := ParseRange(rangeExpr)
	if err != nil {
		return Request{}, &ErrInvalidExpression{Expression: expression, Err: err}
	}
	return Request{
		Expression: expression,
		ExactToken: exactToken,
		Range:      constraint,
	}, nil
}

// ParseRange parses a version range. A bare version such as 1.20 is read as
// ^1.20, so it matches the newest compatible release.
func ParseRange(expr string) (*semver.Constraints, error) {
	expr = strings.TrimSpace(expr)
	if expr != "" && expr[0] >= '0' && expr[0] <= '9' {
		expr = "^" + expr
	}
	return semver.NewConstraint(expr)
}

// SortDescending returns the records ordered newest first. The input slice
// is not modified; records with equal ordering keep their relative order.
func SortDescending(records []*VersionRecord) []*VersionRecord {
	sorted := make([]*VersionRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Ordering.GreaterThan(sorted[j].Ordering)
	})
	return sorted
}

// Resolve picks the release a request refers to. Walking newest first, a
// record whose Raw equals the exact token wins immediately; otherwise the
// first, and therefore newest, record inside the range is kept.
func Resolve(records []*VersionRecord, req Request) (*VersionRecord, error) {
	var exact, ranged *VersionRecord

	for _, rec := range SortDescending(records) {
		if req.ExactToken != "" && rec.Raw == req.ExactToken {
			exact = rec
			break
		}
		if ranged == nil && req.Range != nil && req.Range.Check(rec.Ordering) {
			ranged = rec
		}
	}

	if exact != nil {
		return exact, nil
	}
	if ranged != nil {
		return ranged, nil
	}
	return nil, &ErrNoMatch{Expression: req.Expression}
}
