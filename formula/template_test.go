package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nossen/wmunits/formula"
)

func TestTemplate_Apply(t *testing.T) {
	rec := fakeRecord{storage: 17, tariff: 3, subunit: 2}

	tpl := formula.NewTemplate()
	require.NoError(t, tpl.Parse("history_{storage_counter-12counter}_value"))
	s, err := tpl.Apply(rec)
	require.NoError(t, err)
	assert.Equal(t, "history_5_value", s)

	require.NoError(t, tpl.Parse("{storage_counter}_{tariff_counter}_{2counter*subunit_counter}"))
	s, err = tpl.Apply(rec)
	require.NoError(t, err)
	assert.Equal(t, "17_3_4", s)
}

func TestTemplate_Reuse(t *testing.T) {
	// One parse, many records.
	tpl := formula.NewTemplate()
	require.NoError(t, tpl.Parse("t{tariff_counter}"))

	for _, tc := range []struct {
		tariff int
		out    string
	}{
		{0, "t0"}, {1, "t1"}, {12, "t12"},
	} {
		s, err := tpl.Apply(fakeRecord{tariff: tc.tariff})
		require.NoError(t, err)
		assert.Equal(t, tc.out, s)
	}
}

func TestTemplate_LiteralOnly(t *testing.T) {
	tpl := formula.NewTemplate()
	require.NoError(t, tpl.Parse("no placeholders here"))
	s, err := tpl.Apply(nil)
	require.NoError(t, err)
	assert.Equal(t, "no placeholders here", s)

	require.NoError(t, tpl.Parse(""))
	s, err = tpl.Apply(nil)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestTemplate_RestrictedGrammar(t *testing.T) {
	// Field references are a parse error inside placeholders; only constants
	// and counter references are allowed.
	tpl := formula.NewTemplate()
	err := tpl.Parse("history_{total_kwh}_value")
	assert.ErrorIs(t, err, formula.ErrParse)
	assert.NotEmpty(t, tpl.Errors())

	err = tpl.Parse("broken_{storage_counter")
	assert.ErrorIs(t, err, formula.ErrParse)
}

func TestTemplate_FractionalResult(t *testing.T) {
	tpl := formula.NewTemplate()
	require.NoError(t, tpl.Parse("{storage_counter/2counter}"))

	s, err := tpl.Apply(fakeRecord{storage: 16})
	require.NoError(t, err)
	assert.Equal(t, "8", s, "whole results render without a fractional part")

	s, err = tpl.Apply(fakeRecord{storage: 17})
	require.NoError(t, err)
	assert.Equal(t, "8.5", s)
}
