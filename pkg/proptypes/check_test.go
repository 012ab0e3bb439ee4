package proptypes_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/immutableprops/pkg/immutable"
	"github.com/dmitrymomot/immutableprops/pkg/proptypes"
)

func TestCheckPropTypes(t *testing.T) {
	specs := proptypes.Fields{
		proptypes.F("items", proptypes.ListOf(proptypes.Number).IsRequired()),
		proptypes.F("meta", proptypes.Map),
		proptypes.F("title", proptypes.String),
		proptypes.F("ignored", nil),
	}

	t.Run("returns nil for valid props", func(t *testing.T) {
		props := proptypes.Values{
			"items": immutable.NewList(1, 2),
			"meta":  immutable.MapOf("k", "v"),
			"title": "Hello",
		}
		assert.NoError(t, proptypes.CheckPropTypes(specs, props, "prop", "Widget"))
	})

	t.Run("collects every failing prop in field order", func(t *testing.T) {
		props := proptypes.Values{
			"meta":  immutable.NewList(),
			"title": "Hello",
		}
		err := proptypes.CheckPropTypes(specs, props, "prop", "Widget")
		require.Error(t, err)
		assert.True(t, proptypes.IsValidationError(err))

		errs := proptypes.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"items", "meta"}, errs.Props())
		assert.True(t, errs.Has("items"))
		assert.False(t, errs.Has("title"))
		assert.Equal(t, "Required prop `items` was not specified in `Widget`.", errs.Get("items"))
		assert.Equal(t, "Invalid prop `meta` of type `Immutable.List` supplied to `Widget`, expected `Map`.", errs.Get("meta"))
		assert.Empty(t, errs.Get("title"))

		assert.Equal(t,
			"prop type check failed: Required prop `items` was not specified in `Widget`.; "+
				"Invalid prop `meta` of type `Immutable.List` supplied to `Widget`, expected `Map`.",
			err.Error())
	})

	t.Run("validation errors carry translation data", func(t *testing.T) {
		err := proptypes.CheckPropTypes(specs, proptypes.Values{}, "prop", "Widget")
		errs := proptypes.ExtractValidationErrors(err)
		require.Len(t, errs, 1)

		ve := errs[0]
		assert.Equal(t, "items", ve.Prop)
		assert.Equal(t, "Widget", ve.Component)
		assert.Equal(t, "prop", ve.Location)
		assert.Equal(t, "proptypes.required", ve.TranslationKey)
		assert.Equal(t, "items", ve.TranslationValues["prop"])
	})

	t.Run("errors.Is reaches the failure sentinels", func(t *testing.T) {
		err := proptypes.CheckPropTypes(specs, proptypes.Values{"meta": "x"}, "prop", "Widget")
		assert.ErrorIs(t, err, proptypes.ErrMissingRequired)
		assert.ErrorIs(t, err, proptypes.ErrWrongKind)
		assert.NotErrorIs(t, err, proptypes.ErrRecordMismatch)
	})

	t.Run("empty component name becomes anonymous", func(t *testing.T) {
		err := proptypes.CheckPropTypes(specs, proptypes.Values{}, "prop", "")
		errs := proptypes.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, proptypes.Anonymous, errs[0].Component)
	})

	t.Run("custom validator errors get a generic translation key", func(t *testing.T) {
		custom := proptypes.Fields{
			proptypes.F("x", proptypes.ValidatorFunc(func(proptypes.Props, string, string, string) error {
				return errors.New("boom")
			})),
		}
		err := proptypes.CheckPropTypes(custom, proptypes.Values{}, "prop", "Widget")
		errs := proptypes.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "boom", errs[0].Message)
		assert.Equal(t, "proptypes.failed", errs[0].TranslationKey)
		assert.Equal(t, "boom", errs[0].TranslationValues["error"])
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, proptypes.ExtractValidationErrors(nil))
	assert.Nil(t, proptypes.ExtractValidationErrors(errors.New("plain")))
	assert.False(t, proptypes.IsValidationError(errors.New("plain")))

	var empty proptypes.ValidationErrors
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "prop type check failed", empty.Error())
}
