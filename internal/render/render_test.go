package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/gchart/internal/render"
)

// --- Test types ---

type row struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

func (r row) Row() []string { return []string{r.Key, r.Value} }

type headedRow struct{ row }

func (r headedRow) Header() []string { return []string{"Param", "Value"} }

type result struct {
	URL string `json:"url" yaml:"url"`
}

func (r result) String() string { return r.URL }
func (r result) List() []string { return []string{"a=1", "b=2"} }
func (r result) Pairs() []render.KeyValue {
	return []render.KeyValue{{Key: "URL", Value: r.URL}}
}

type plainItem struct{ N int }

type errWriter struct{}

var errWriteFailed = errors.New("write failed")

func (errWriter) Write([]byte) (int, error) { return 0, errWriteFailed }

// ============================================================
// Tests
// ============================================================

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    render.Format
		wantErr require.ErrorAssertionFunc
	}{
		"plain":    {input: "plain", want: render.Plain, wantErr: require.NoError},
		"json":     {input: "json", want: render.JSON, wantErr: require.NoError},
		"yaml":     {input: "yaml", want: render.YAML, wantErr: require.NoError},
		"table":    {input: "table", want: render.Table, wantErr: require.NoError},
		"list":     {input: "list", want: render.List, wantErr: require.NoError},
		"env":      {input: "env", want: render.ENV, wantErr: require.NoError},
		"csv":      {input: "csv", want: render.CSV, wantErr: require.NoError},
		"tsv":      {input: "tsv", want: render.TSV, wantErr: require.NoError},
		"markdown": {input: "markdown", want: render.Markdown, wantErr: require.NoError},
		"html":     {input: "html", want: render.HTML, wantErr: require.NoError},
		"template": {input: "go-template={{.URL}}", want: render.GoTemplate("{{.URL}}"), wantErr: require.NoError},
		"unknown":  {input: "xml", wantErr: require.Error},
		"empty":    {input: "", wantErr: require.Error},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := render.ParseFormat(tc.input)
			tc.wantErr(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFormatSentinel(t *testing.T) {
	t.Parallel()
	_, err := render.ParseFormat("xml")
	assert.ErrorIs(t, err, render.ErrUnsupportedFormat)
}

func TestFormats(t *testing.T) {
	t.Parallel()
	fs := render.Formats()
	assert.Len(t, fs, 10)
	fs[0] = "mutated"
	assert.Equal(t, render.Plain, render.Formats()[0])
	for _, f := range []render.Format{render.Table, render.Markdown, render.HTML, render.CSV, render.TSV} {
		assert.True(t, f.Tabular(), f)
	}
	for _, f := range []render.Format{render.Plain, render.JSON, render.YAML, render.List, render.ENV, render.GoTemplate("{{.}}")} {
		assert.False(t, f.Tabular(), f)
	}
}

func TestWritePlain(t *testing.T) {
	t.Parallel()
	out, err := render.Marshal(render.Plain, result{URL: "http://x?a=1"})
	require.NoError(t, err)
	assert.Equal(t, "http://x?a=1\n", string(out))

	out, err = render.Marshal(render.Plain, plainItem{N: 3})
	require.NoError(t, err)
	assert.Equal(t, "{3}\n", string(out))
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	out, err := render.Marshal(render.JSON, result{URL: "http://x?a=1&b=<2>"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"url\": \"http://x?a=1&b=<2>\"\n}\n", string(out))

	out, err = render.Marshal(render.JSON, row{"a", "1"}, row{"b", "2"})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":"a","value":"1"},{"key":"b","value":"2"}]`, string(out))
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	out, err := render.Marshal(render.YAML, result{URL: "chart"})
	require.NoError(t, err)
	assert.Equal(t, "url: chart\n", string(out))

	out, err = render.Marshal(render.YAML, row{"a", "1"}, row{"b", "2"})
	require.NoError(t, err)
	assert.Equal(t, "- key: a\n  value: \"1\"\n- key: b\n  value: \"2\"\n", string(out))
}

func TestWriteList(t *testing.T) {
	t.Parallel()
	out, err := render.Marshal(render.List, result{})
	require.NoError(t, err)
	assert.Equal(t, "a=1\nb=2\n", string(out))
}

func TestWriteENV(t *testing.T) {
	t.Parallel()
	out, err := render.Marshal(render.ENV, result{URL: "http://x?a=1&b=2"})
	require.NoError(t, err)
	assert.Equal(t, "URL=\"http://x?a=1&b=2\"\n", string(out))
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	out, err := render.Marshal(render.CSV, headedRow{row{"chs", "1x2"}}, headedRow{row{"chco", "FF0000,00FF00"}})
	require.NoError(t, err)
	assert.Equal(t, "Param,Value\nchs,1x2\nchco,\"FF0000,00FF00\"\n", string(out))

	out, err = render.Marshal(render.CSV, row{"a", "1"})
	require.NoError(t, err)
	assert.Equal(t, "a,1\n", string(out))
}

func TestWriteTSV(t *testing.T) {
	t.Parallel()
	out, err := render.Marshal(render.TSV, headedRow{row{"chs", "1x2"}}, headedRow{row{"chco", "FF0000,00FF00"}})
	require.NoError(t, err)
	assert.Equal(t, "Param\tValue\nchs\t1x2\nchco\tFF0000,00FF00\n", string(out))

	out, err = render.Marshal(render.TSV, row{"a", "1"})
	require.NoError(t, err)
	assert.Equal(t, "a\t1\n", string(out))
}

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()
	out, err := render.Marshal(render.Markdown, headedRow{row{"cht", "LineChart"}}, headedRow{row{"chdl", "A|B"}})
	require.NoError(t, err)
	want := "" +
		"| Param | Value     |\n" +
		"| ----- | --------- |\n" +
		"| cht   | LineChart |\n" +
		"| chdl  | A\\|B      |\n"
	assert.Equal(t, want, string(out))
}

func TestWriteMarkdownRequiresHeader(t *testing.T) {
	t.Parallel()
	_, err := render.Marshal(render.Markdown, row{"a", "1"})
	require.ErrorIs(t, err, render.ErrMissingInterface)
	assert.Contains(t, err.Error(), "Headed")
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()
	out, err := render.Marshal(render.HTML, headedRow{row{"chtt", "<b>&</b>"}})
	require.NoError(t, err)
	want := "" +
		"<table>\n" +
		"  <thead>\n" +
		"    <tr>\n" +
		"      <th>Param</th>\n" +
		"      <th>Value</th>\n" +
		"    </tr>\n" +
		"  </thead>\n" +
		"  <tbody>\n" +
		"    <tr>\n" +
		"      <td>chtt</td>\n" +
		"      <td>&lt;b&gt;&amp;&lt;/b&gt;</td>\n" +
		"    </tr>\n" +
		"  </tbody>\n" +
		"</table>\n"
	assert.Equal(t, want, string(out))

	out, err = render.Marshal(render.HTML, row{"a", "1"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<thead>")
}

func TestWriteGoTemplate(t *testing.T) {
	t.Parallel()
	out, err := render.Marshal(render.GoTemplate("{{.URL}}"), result{URL: "http://x?a=1&b=2"}, result{URL: "y"})
	require.NoError(t, err)
	assert.Equal(t, "http://x?a=1&b=2\ny\n", string(out))

	f, err := render.ParseFormat("go-template={{.Key}}={{.Value}}")
	require.NoError(t, err)
	out, err = render.Marshal(f, row{"chs", "1x2"})
	require.NoError(t, err)
	assert.Equal(t, "chs=1x2\n", string(out))
}

func TestWriteGoTemplateErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"parse":         "{{.URL",
		"unknown field": "{{.Nope}}",
	}
	for name, tmpl := range tests {
		tmpl := tmpl
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := render.Marshal(render.GoTemplate(tmpl), result{URL: "x"})
			assert.ErrorIs(t, err, render.ErrInvalidTemplate)
		})
	}
}

func TestWriteTable(t *testing.T) {
	t.Parallel()
	out, err := render.Marshal(render.Table, headedRow{row{"cht", "LineChart"}}, headedRow{row{"chs", "1x2"}})
	require.NoError(t, err)
	want := "" +
		"╭───────┬───────────╮\n" +
		"│ Param │ Value     │\n" +
		"├───────┼───────────┤\n" +
		"│ cht   │ LineChart │\n" +
		"│ chs   │ 1x2       │\n" +
		"╰───────┴───────────╯\n"
	assert.Equal(t, want, string(out))
}

func TestWriteTableWithoutHeader(t *testing.T) {
	t.Parallel()
	out, err := render.Marshal(render.Table, row{"a", "日本"})
	require.NoError(t, err)
	want := "" +
		"╭───┬──────╮\n" +
		"│ a │ 日本 │\n" +
		"╰───┴──────╯\n"
	assert.Equal(t, want, string(out))
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()
	for _, f := range []render.Format{render.Table, render.Markdown, render.HTML, render.CSV, render.TSV, render.List, render.ENV} {
		out, err := render.Marshal[row](f)
		require.NoError(t, err, f)
		assert.Empty(t, out, f)
	}
}

func TestMissingInterface(t *testing.T) {
	t.Parallel()
	for _, f := range []render.Format{render.Table, render.Markdown, render.HTML, render.CSV, render.TSV, render.List, render.ENV} {
		_, err := render.Marshal(f, plainItem{N: 1})
		assert.ErrorIs(t, err, render.ErrMissingInterface, f)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	t.Parallel()
	_, err := render.Marshal(render.Format("xml"), result{})
	assert.ErrorIs(t, err, render.ErrUnsupportedFormat)
}

func TestWriteErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		f    render.Format
		item any
	}{
		"plain":    {f: render.Plain, item: result{URL: "x"}},
		"table":    {f: render.Table, item: row{"a", "b"}},
		"list":     {f: render.List, item: result{}},
		"env":      {f: render.ENV, item: result{URL: "x"}},
		"csv":      {f: render.CSV, item: row{"a", "b"}},
		"tsv":      {f: render.TSV, item: row{"a", "b"}},
		"markdown": {f: render.Markdown, item: headedRow{row{"a", "b"}}},
		"html":     {f: render.HTML, item: row{"a", "b"}},
		"template": {f: render.GoTemplate("{{.URL}}"), item: result{URL: "x"}},
		"json":     {f: render.JSON, item: result{URL: "x"}},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := render.Write(errWriter{}, tc.f, tc.item)
			assert.Error(t, err)
		})
	}
}

func TestWriteToBuffer(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, render.List, result{}))
	assert.Equal(t, "a=1\nb=2\n", buf.String())
}
