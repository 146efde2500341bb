package markup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementSkipsNilChildren(t *testing.T) {
	n := El("div", nil, Text("a"), nil)
	require.Len(t, n.Children, 1)
	assert.Equal(t, "a", n.Children[0].Text)
}

func TestSetAttrReplacesExisting(t *testing.T) {
	n := El("a").SetAttr("href", "/one").SetAttr("rel", "noopener").SetAttr("href", "/two")
	require.Len(t, n.Attrs, 2)
	v, ok := n.Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "/two", v)
}

func TestSetAttrIfAndClass(t *testing.T) {
	n := El("button").SetAttrIf("id", "").SetClass("")
	assert.Empty(t, n.Attrs)

	n.SetAttrIf("id", "save").SetClass("group px-5")
	assert.True(t, n.HasAttr("id"))
	assert.True(t, n.HasClass("px-5"))
	assert.False(t, n.HasClass("px"))
}

func TestClick(t *testing.T) {
	clicks := 0
	btn := El("button").Handle(func() { clicks++ })
	assert.True(t, btn.Click())
	assert.Equal(t, 1, clicks)

	btn.SetAttr("disabled", "")
	assert.False(t, btn.Click())
	assert.Equal(t, 1, clicks)

	assert.False(t, El("button").Click())

	var missing *Node
	assert.False(t, missing.Click())
}

func TestFlattenExpandsFragments(t *testing.T) {
	n := El("button", Fragment(El("svg"), Fragment(El("div"))), El("span"))
	flat := n.Flatten()
	require.Len(t, flat, 3)
	assert.Equal(t, "svg", flat[0].Tag)
	assert.Equal(t, "div", flat[1].Tag)
	assert.Equal(t, "span", flat[2].Tag)
}

func TestFindAllAndTextContent(t *testing.T) {
	n := El("div",
		El("span", Text("Get ")).SetAttr("data-part", "label"),
		El("span", Text("started")),
	)
	spans := n.FindAll(ByTag("span"))
	assert.Len(t, spans, 2)
	assert.Equal(t, spans[0], n.Find(ByAttr("data-part", "label")))
	assert.Nil(t, n.Find(ByTag("svg")))
	assert.Equal(t, "Get started", n.TextContent())
}

func TestRenderString(t *testing.T) {
	n := El("button",
		Fragment(El("div", Text("Save & exit"))),
	).SetAttr("id", "save").SetAttr("disabled", "").SetClass("group px-5")

	out, err := RenderString(n)
	require.NoError(t, err)
	assert.Equal(t, `<button id="save" disabled="" class="group px-5"><div>Save &amp; exit</div></button>`, out)
}

func TestRenderTopLevelFragment(t *testing.T) {
	out, err := RenderString(Fragment(El("i"), Text("x")))
	require.NoError(t, err)
	assert.Equal(t, "<i></i>x", out)
}

func TestRenderNil(t *testing.T) {
	out, err := RenderString(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Document(&buf, El("html", El("body"))))
	assert.True(t, strings.HasPrefix(buf.String(), "<!DOCTYPE html>"))
	assert.Contains(t, buf.String(), "<body></body>")
}

func TestIndent(t *testing.T) {
	out, err := Indent([]byte(`<button class="px-5"><div><span>Save</span></div><svg><path d="M0"></path></svg></button>`))
	require.NoError(t, err)

	want := "<button class=\"px-5\">\n" +
		"  <div>\n" +
		"    <span>\n" +
		"      Save\n" +
		"    </span>\n" +
		"  </div>\n" +
		"  <svg>\n" +
		"    <path d=\"M0\">\n" +
		"    </path>\n" +
		"  </svg>\n" +
		"</button>\n"
	assert.Equal(t, want, string(out))
}

func TestIndentVoidAndDoctype(t *testing.T) {
	out, err := Indent([]byte("<!DOCTYPE html><html><head><meta charset=\"utf-8\"/></head></html>"))
	require.NoError(t, err)

	want := "<!DOCTYPE html>\n" +
		"<html>\n" +
		"  <head>\n" +
		"    <meta charset=\"utf-8\"/>\n" +
		"  </head>\n" +
		"</html>\n"
	assert.Equal(t, want, string(out))
}

func TestIndentString(t *testing.T) {
	out, err := IndentString(El("p", Text("a & b")))
	require.NoError(t, err)
	assert.Equal(t, "<p>\n  a &amp; b\n</p>\n", out)
}
