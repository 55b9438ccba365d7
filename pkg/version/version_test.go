package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/NVIDIA/version-bypass/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		segments []int64
		wantErr  error
	}{
		{name: "single", input: "1", segments: []int64{1}},
		{name: "two", input: "1.5", segments: []int64{1, 5}},
		{name: "three", input: "1.5.4", segments: []int64{1, 5, 4}},
		{name: "four", input: "0.46.10.2", segments: []int64{0, 46, 10, 2}},
		{name: "leading zero", input: "01.05", segments: []int64{1, 5}},
		{name: "empty", input: "", wantErr: ErrEmptyVersion},
		{name: "trailing dot", input: "1.", wantErr: ErrNonNumeric},
		{name: "leading dot", input: ".1", wantErr: ErrNonNumeric},
		{name: "double dot", input: "1..2", wantErr: ErrNonNumeric},
		{name: "v prefix", input: "v1.2.3", wantErr: ErrNonNumeric},
		{name: "prerelease", input: "1.2.3-beta", wantErr: ErrNonNumeric},
		{name: "negative", input: "1.-2", wantErr: ErrNonNumeric},
		{name: "plus sign", input: "+1.2", wantErr: ErrNonNumeric},
		{name: "space", input: "1. 2", wantErr: ErrNonNumeric},
		{name: "letters", input: "a.b.c", wantErr: ErrNonNumeric},
		{name: "overflow", input: "1.99999999999999999999", wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, cerrors.ErrCodeParseError, cerrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.segments, v.Segments())
			assert.Equal(t, tt.input, v.String())
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.5", "1.5.0", 0},
		{"1.5", "1.5.1", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.5.4", "1.5.4", 0},
		{"1.0.0", "1.5.4", -1},
		{"1.6.0", "1.5.9", 1},
		{"0.0.0", "0", 0},
		{"1.10", "1.9", 1},
		{"1.5.0.0.0", "1.5", 0},
		{"1.5.0.0.1", "1.5", 1},
		{"1", "0.99.99", 1},
		{"0.46.0", "1.5.4", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// antisymmetry
			rev, err := Compare(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, -tt.want, rev)
		})
	}
}

func TestCompareReflexive(t *testing.T) {
	for _, s := range []string{"0", "1.5", "1.5.4", "10.20.30.40"} {
		got, err := Compare(s, s)
		require.NoError(t, err)
		assert.Zero(t, got, s)
	}
}

func TestCompareParseError(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"left malformed", "1.x", "1.5.4"},
		{"right malformed", "1.5.4", "1.5.4-rc1"},
		{"left empty", "", "1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compare(tt.a, tt.b)
			require.Error(t, err)

			var se *cerrors.StructuredError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, cerrors.ErrCodeParseError, se.Code)
		})
	}
}

func TestZeroVersionCompare(t *testing.T) {
	var zero Version
	assert.Equal(t, 0, zero.Compare(MustParse("0.0.0")))
	assert.Equal(t, -1, zero.Compare(MustParse("0.0.1")))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not-a-version") })
	assert.NotPanics(t, func() { MustParse("1.5.4") })
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("1.5.4"))
	assert.False(t, IsValid("1.5.4 "))
	assert.False(t, IsValid("latest"))
}

func TestSegmentsIsCopy(t *testing.T) {
	v := MustParse("1.2.3")
	s := v.Segments()
	s[0] = 99
	assert.Equal(t, []int64{1, 2, 3}, v.Segments())
}
