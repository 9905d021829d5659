package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/jss/css"
	"github.com/npillmayer/jss/namespace"
	"github.com/npillmayer/jss/render"
	"github.com/npillmayer/jss/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layerSheet() *style.Node {
	return style.Sheet(
		style.Root(style.D("display", css.Raw("block"))),
		style.Rule(".layer",
			style.D("background_color", css.Raw("red")),
			style.D("border", css.Raw("1px solid green")),
		),
		style.Rule("@media screen and (max-width: 800px)").Nest(
			style.Rule(".layer", style.D("width", css.Percent(100))),
		),
		style.Rule(".hide .layer", style.D("opacity", css.Num(0))),
	)
}

func TestRenderSingleRule(t *testing.T) {
	n := style.Rule(".layer", style.D("width", css.Px(10)))
	assert.Equal(t, ".layer{width:10px;}", render.Render(n, render.Compact))
}

func TestRenderSiblings(t *testing.T) {
	sheet := style.Sheet(
		style.Rule(".layer",
			style.D("border", css.Raw("1px solid green")),
			style.D("background-color", css.Raw("red")),
		),
		style.Rule(".hide .layer", style.D("opacity", css.Numeric(0, css.Unitless))),
	)
	assert.Equal(t,
		".layer{border:1px solid green;background-color:red;}.hide .layer{opacity:0;}",
		render.Render(sheet, render.Compact))
}

func TestRenderNamespacedPretty(t *testing.T) {
	n := namespace.Apply(style.Root(style.D("display", css.Raw("block"))), "frame")
	assert.Equal(t, ".frame {\n    display: block;\n}", render.Render(n, render.Pretty))
}

func TestRenderNamespacedMediaQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jss.render")
	defer teardown()
	//
	out := render.Render(namespace.Apply(layerSheet(), "frame"), render.Compact)
	expected := `.frame{display:block;}.frame__layer{background-color:red;border:1px solid green;}` +
		`@media screen and (max-width: 800px){.frame__layer{width:100%;}}` +
		`.frame__hide .frame__layer{opacity:0;}`
	assert.Equal(t, expected, out)
}

func TestRenderPretty(t *testing.T) {
	out := render.Render(namespace.Apply(layerSheet(), "frame"), render.Pretty)
	expected := `.frame {
    display: block;
}
.frame__layer {
    background-color: red;
    border: 1px solid green;
}
@media screen and (max-width: 800px) {
    .frame__layer {
        width: 100%;
    }
}
.frame__hide .frame__layer {
    opacity: 0;
}`
	assert.Equal(t, expected, out)
}

func TestRenderNestedWithDeclarations(t *testing.T) {
	n := style.Rule(".card", style.D("color", css.Raw("red"))).Nest(
		style.Rule(".title", style.D("font-weight", css.Raw("bold"))),
	)
	assert.Equal(t, ".card{color:red;.title{font-weight:bold;}}", render.Render(n, render.Compact))
	assert.Equal(t,
		".card {\n    color: red;\n    .title {\n        font-weight: bold;\n    }\n}",
		render.Render(n, render.Pretty))
}

func TestRenderEmptyBlock(t *testing.T) {
	n := style.Rule(".empty")
	assert.Equal(t, ".empty{}", render.Render(n, render.Compact))
	assert.Equal(t, ".empty {\n}", render.Render(n, render.Pretty))
	assert.Equal(t, "", render.Render(style.Sheet(), render.Compact))
	assert.Equal(t, "", render.Render(nil, render.Pretty))
}

func TestRenderPrettySeparatesSiblings(t *testing.T) {
	n := style.Sheet(
		style.Rule("sel"),
		style.Rule("@media print").Nest(
			style.Rule(".a", style.D("color", css.Raw("red"))),
			style.Rule(".b"),
		),
	)
	out := render.Render(n, render.Pretty)
	assert.Equal(t,
		"sel {\n}\n@media print {\n    .a {\n        color: red;\n    }\n    .b {\n    }\n}",
		out)
	assert.False(t, strings.HasPrefix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, "sel {\n}", render.Render(style.Rule("sel"), render.Pretty))
}

func TestRenderSkipsUnvalidatedDeclarations(t *testing.T) {
	n := style.Rule("p", style.Declaration{Value: css.Raw("red")}, style.D("color", css.Raw("blue")))
	assert.Equal(t, "p{color:blue;}", render.Render(n, render.Compact))
	assert.Equal(t, "p {\n    color: blue;\n}", render.Render(n, render.Pretty))
	assert.Equal(t, "", render.Declarations([]style.Declaration{{Value: css.Raw("red")}}, render.Pretty))
}

func TestRenderKeepsDuplicates(t *testing.T) {
	n := style.Rule("p",
		style.D("color", css.Raw("red")),
		style.D("color", css.Raw("blue")),
	)
	assert.Equal(t, "p{color:red;color:blue;}", render.Render(n, render.Compact))
}

func TestRenderDeterministic(t *testing.T) {
	sheet := layerSheet()
	for _, mode := range []render.Mode{render.Compact, render.Pretty} {
		assert.Equal(t, render.Render(sheet, mode), render.Render(sheet, mode))
	}
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func TestCompactPrettyEquivalence(t *testing.T) {
	sheet := namespace.Apply(layerSheet(), "frame")
	compact := render.Render(sheet, render.Compact)
	pretty := render.Render(sheet, render.Pretty)
	assert.Equal(t, stripWhitespace(compact), stripWhitespace(pretty))
	assert.NotContains(t, compact, "\n")
}

// Rendered CSS must be readable by an independent CSS parser, with the same
// rules and declarations in both modes.
func TestRenderParsesBack(t *testing.T) {
	sheet := namespace.Apply(layerSheet(), "frame")
	for _, mode := range []render.Mode{render.Compact, render.Pretty} {
		parsed, err := parser.Parse(render.Render(sheet, mode))
		require.NoError(t, err, "mode %s", mode)
		require.Len(t, parsed.Rules, 4, "mode %s", mode)
		assert.Equal(t, ".frame", parsed.Rules[0].Prelude)
		require.Len(t, parsed.Rules[1].Declarations, 2)
		assert.Equal(t, "background-color", parsed.Rules[1].Declarations[0].Property)
		assert.Equal(t, "1px solid green", parsed.Rules[1].Declarations[1].Value)
		assert.Equal(t, "@media", parsed.Rules[2].Name)
		require.Len(t, parsed.Rules[2].Rules, 1)
		assert.Equal(t, ".frame__layer", parsed.Rules[2].Rules[0].Prelude)
		assert.Equal(t, "100%", parsed.Rules[2].Rules[0].Declarations[0].Value)
	}
}

func TestDeclarations(t *testing.T) {
	decls := []style.Declaration{
		style.D("background_color", css.Raw("red")),
		style.D("border", css.Raw("1px solid green")),
	}
	assert.Equal(t, "background-color:red;border:1px solid green;", render.Declarations(decls, render.Compact))
	assert.Equal(t, "background-color: red; border: 1px solid green;", render.Declarations(decls, render.Pretty))
	assert.Equal(t, "", render.Declarations(nil, render.Compact))
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := render.WriteTo(&buf, style.Rule("b", style.D("color", css.RGB(0, 0, 0))), render.Options{})
	require.NoError(t, err)
	assert.Equal(t, "b{color:rgb(0, 0, 0);}", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestModes(t *testing.T) {
	m, err := render.ParseMode("pretty")
	require.NoError(t, err)
	assert.Equal(t, render.Pretty, m)
	_, err = render.ParseMode("fancy")
	assert.ErrorIs(t, err, render.ErrUnknownMode)
	assert.Equal(t, "compact", render.Compact.String())

	var opts render.Options
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"pretty"}`), &opts))
	assert.Equal(t, render.Pretty, opts.Mode)
	assert.Error(t, json.Unmarshal([]byte(`{"mode":"fancy"}`), &opts))
	data, err := json.Marshal(render.Options{Mode: render.Compact})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"compact"}`, string(data))
}

func TestLoadOptions(t *testing.T) {
	opts, err := render.LoadOptions([]byte("mode: pretty\n"))
	require.NoError(t, err)
	assert.Equal(t, render.Pretty, opts.Mode)
	opts, err = render.LoadOptions([]byte("# defaults\n"))
	require.NoError(t, err)
	assert.Equal(t, render.Compact, opts.Mode)
	_, err = render.LoadOptions([]byte("mode: fancy\n"))
	assert.Error(t, err)
}
