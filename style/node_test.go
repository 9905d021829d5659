package style_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/jss/css"
	"github.com/npillmayer/jss/css/property"
	"github.com/npillmayer/jss/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDeclareValidates(t *testing.T) {
	d, err := style.Declare("background_color", css.Raw("red"))
	require.NoError(t, err)
	assert.Equal(t, property.Must("background-color"), d.Property)
	assert.Equal(t, "background-color: red", d.String())

	_, err = style.Declare("not-soo-awesome-style-name", css.Raw("red"))
	assert.ErrorIs(t, err, property.ErrInvalidProperty)
}

func TestDPanicsOnTypo(t *testing.T) {
	assert.Panics(t, func() {
		style.Rule(".layer", style.D("background-color-typo", css.Raw("red")))
	})
}

func TestNodeKinds(t *testing.T) {
	assert.True(t, style.Sheet().IsSheet())
	assert.True(t, style.Root().IsRoot())
	assert.True(t, style.Rule("@media print").IsAtRule())
	assert.False(t, style.Rule(".a").IsAtRule())
	assert.False(t, style.Rule(".a").IsRoot())
}

func TestNodeOrderPreserved(t *testing.T) {
	n := style.Rule(".layer",
		style.D("color", css.Raw("red")),
		style.D("color", css.Raw("blue")),
	).Declare(style.D("color", css.Raw("red")))
	require.Len(t, n.Declarations, 3)
	assert.Equal(t, "red", n.Declarations[0].Value.String())
	assert.Equal(t, "blue", n.Declarations[1].Value.String())
	assert.Equal(t, "red", n.Declarations[2].Value.String())
}

func TestTransformDoesNotMutate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jss.style")
	defer teardown()
	//
	sheet := style.Sheet(
		style.Rule(".a", style.D("width", css.Px(1))),
		style.Rule("@media print").Nest(style.Rule(".b")),
	)
	upper := sheet.Transform(func(sel string) string { return sel + "!" })
	assert.Equal(t, ".a", sheet.Children[0].Selector)
	assert.Equal(t, ".a!", upper.Children[0].Selector)
	assert.Equal(t, ".b!", upper.Children[1].Children[0].Selector)
	assert.Equal(t, "!", upper.Selector)

	clone := sheet.Clone()
	clone.Children[0].Declarations[0] = style.D("height", css.Px(2))
	assert.Equal(t, property.Must("width"), sheet.Children[0].Declarations[0].Property)
	assert.Equal(t, 4, clone.Size())
}

func TestWalkPreOrder(t *testing.T) {
	sheet := style.Sheet(
		style.Rule(".a").Nest(style.Rule(".a1"), style.Rule(".a2")),
		style.Rule(".b"),
	)
	var order []string
	var depths []int
	sheet.Walk(func(n *style.Node, depth int) bool {
		order = append(order, n.Selector)
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"", ".a", ".a1", ".a2", ".b"}, order)
	assert.Equal(t, []int{0, 1, 2, 2, 1}, depths)

	order = order[:0]
	sheet.Walk(func(n *style.Node, depth int) bool {
		order = append(order, n.Selector)
		return n.Selector != ".a"
	})
	assert.Equal(t, []string{"", ".a", ".b"}, order)
}

func TestDeclarationLiteralIsInvalid(t *testing.T) {
	assert.False(t, style.Declaration{Value: css.Raw("red")}.IsValid())
	assert.True(t, style.D("color", css.Raw("red")).IsValid())
}

func TestBuilder(t *testing.T) {
	b := style.NewBuilder()
	b.Rule(".layer").Set("background_color", css.Raw("red")).Set("border", css.Raw("1px solid green")).End()
	b.Rule("@media screen and (max-width: 800px)").
		Rule(".layer").Set("width", css.Percent(100)).End().
		End()
	sheet, err := b.Build()
	require.NoError(t, err)
	require.Len(t, sheet.Children, 2)
	assert.Equal(t, property.Must("background-color"), sheet.Children[0].Declarations[0].Property)
	assert.Equal(t, ".layer", sheet.Children[1].Children[0].Selector)
}

func TestBuilderAllOrNothing(t *testing.T) {
	b := style.NewBuilder()
	b.Rule(".layer").Set("width", css.Px(10)).Set("widht", css.Px(10)).Set("height", css.Px(1)).End()
	sheet, err := b.Build()
	assert.Nil(t, sheet)
	assert.ErrorIs(t, err, property.ErrInvalidProperty)
	var ipe property.InvalidPropertyError
	require.True(t, errors.As(err, &ipe))
	assert.Equal(t, "widht", ipe.Name)
	assert.Contains(t, err.Error(), ".layer")
}

func TestBuilderCollectsAllInvalidProperties(t *testing.T) {
	b := style.NewBuilder()
	b.Rule(".a").Set("widht", css.Px(10)).End()
	b.Rule(".b").Set("colour", css.Raw("red")).Set("color", css.Raw("red")).End()
	_, err := b.Build()
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "widht")
	assert.Contains(t, errs[1].Error(), "colour")
	assert.ErrorIs(t, errs[1], property.ErrInvalidProperty)
}

func TestBuilderUnbalanced(t *testing.T) {
	_, err := style.NewBuilder().Rule(".a").Build()
	assert.ErrorIs(t, err, style.ErrUnbalanced)
	_, err = style.NewBuilder().End().Build()
	assert.ErrorIs(t, err, style.ErrUnbalanced)
	_, err = style.NewBuilder().Set("width", css.Px(1)).Build()
	assert.ErrorIs(t, err, style.ErrUnbalanced)
}
