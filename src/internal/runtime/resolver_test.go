package runtime

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(raw, ordering string) *VersionRecord {
	return &VersionRecord{Raw: raw, Ordering: semver.MustParse(ordering)}
}

func goRequest(t *testing.T, expression string) Request {
	t.Helper()
	req, err := NewRequest(expression, "go"+expression, expression)
	require.NoError(t, err)
	return req
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		expr    string
		admits  []string
		rejects []string
	}{
		{expr: "1.20", admits: []string{"1.20.0", "1.21.5"}, rejects: []string{"1.19.9", "2.0.0"}},
		{expr: "^1.18", admits: []string{"1.18.0", "1.20.0"}, rejects: []string{"2.0.0"}},
		{expr: "=1.21.0", admits: []string{"1.21.0"}, rejects: []string{"1.21.1"}},
		{expr: ">=20 <21", admits: []string{"20.10.0"}, rejects: []string{"21.0.0", "18.0.0"}},
		{expr: " 21 ", admits: []string{"21.0.1"}, rejects: []string{"22.0.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			c, err := ParseRange(tt.expr)
			require.NoError(t, err)
			for _, v := range tt.admits {
				assert.True(t, c.Check(semver.MustParse(v)), "%s should admit %s", tt.expr, v)
			}
			for _, v := range tt.rejects {
				assert.False(t, c.Check(semver.MustParse(v)), "%s should reject %s", tt.expr, v)
			}
		})
	}
}

func TestNewRequest_Invalid(t *testing.T) {
	_, err := NewRequest("abc", "goabc", "abc")
	require.Error(t, err)
	assert.True(t, IsInvalidExpression(err))
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestSortDescending(t *testing.T) {
	records := []*VersionRecord{
		record("go1.18.0", "1.18.0"),
		record("go1.21.0", "1.21.0"),
		record("go1.21.0rc1", "1.21.0-rc1"),
		record("go1.20.0", "1.20.0"),
	}

	sorted := SortDescending(records)

	raws := make([]string, len(sorted))
	for i, r := range sorted {
		raws[i] = r.Raw
	}
	assert.Equal(t, []string{"go1.21.0", "go1.21.0rc1", "go1.20.0", "go1.18.0"}, raws)
	assert.Equal(t, "go1.18.0", records[0].Raw, "input must not be reordered")
}

func TestSortDescending_StableForEqualOrdering(t *testing.T) {
	records := []*VersionRecord{
		record("first", "1.0.0"),
		record("second", "1.0.0"),
		record("third", "1.0.0"),
	}

	sorted := SortDescending(records)

	assert.Equal(t, "first", sorted[0].Raw)
	assert.Equal(t, "second", sorted[1].Raw)
	assert.Equal(t, "third", sorted[2].Raw)
}

func TestResolve_ExactMatchTakesPrecedence(t *testing.T) {
	records := []*VersionRecord{
		record("go1.21.0", "1.21.0"),
		record("go1.21.0rc1", "1.21.0-rc1"),
		record("go1.21.1", "1.21.1"),
	}

	rec, err := Resolve(records, goRequest(t, "1.21.0"))
	require.NoError(t, err)
	assert.Equal(t, "go1.21.0", rec.Raw)
}

func TestResolve_PrereleaseByExactToken(t *testing.T) {
	records := []*VersionRecord{
		record("go1.21.0", "1.21.0"),
		record("go1.21rc2", "1.21.0-rc2"),
	}

	req, err := NewRequest("1.21rc2", "go1.21rc2", "1.21")
	require.NoError(t, err)

	rec, err := Resolve(records, req)
	require.NoError(t, err)
	assert.Equal(t, "go1.21rc2", rec.Raw)
}

func TestResolve_NewestCompatible(t *testing.T) {
	records := []*VersionRecord{
		record("go1.18.0", "1.18.0"),
		record("go1.20.0", "1.20.0"),
		record("go1.19.5", "1.19.5"),
		record("go2.0.0", "2.0.0"),
	}

	rec, err := Resolve(records, goRequest(t, "^1.18"))
	require.NoError(t, err)
	assert.Equal(t, "go1.20.0", rec.Raw)
}

func TestResolve_RangeMatchIsNotReplaced(t *testing.T) {
	// Both records are in range; the newer one is met first and kept.
	records := []*VersionRecord{
		record("v20.9.0", "20.9.0"),
		record("v20.10.0", "20.10.0"),
	}

	req, err := NewRequest("20", "v20", "20")
	require.NoError(t, err)

	rec, err := Resolve(records, req)
	require.NoError(t, err)
	assert.Equal(t, "v20.10.0", rec.Raw)
}

func TestResolve_NoMatch(t *testing.T) {
	records := []*VersionRecord{record("go1.18.0", "1.18.0")}

	_, err := Resolve(records, goRequest(t, "1.30"))
	require.Error(t, err)
	assert.True(t, IsNoMatch(err))
	assert.Contains(t, err.Error(), "1.30")

	_, err = Resolve(nil, goRequest(t, "1.18"))
	assert.True(t, IsNoMatch(err))
}
