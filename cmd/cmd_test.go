package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rubiojr/quotescan/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := newCommand("test", strings.NewReader(stdin), &out, &errOut)
	err := c.Run(context.Background(), append([]string{"quotescan"}, args...))
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSplit_Stdin(t *testing.T) {
	out, _, err := run(t, `a,"b,c",d`, "split", "-q", `""`)
	require.NoError(t, err)
	assert.Equal(t, "a\n\"b,c\"\nd\n", out)
}

func TestSplit_Options(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"keep delimiter", "a,b", []string{"-k"}, "a,\nb\n"},
		{"string delimiter", "a::b", []string{"-s", "-d", "::"}, "a\nb\n"},
		{"delimiter set", "a;b,c", []string{"-d", ",;"}, "a\nb\nc\n"},
		{"trim", " a , b ", []string{"-t"}, "a\nb\n"},
		{"two layer", `f(a,"b)"),c`, []string{"-q", `""`, "-i", "()"}, "f(a,\"b)\")\nc\n"},
		{"trailing empty segment", "a,", nil, "a\n\n"},
		{"trailing newline", "a,b\n", nil, "a\nb\n"},
		{"trailing crlf", "a,b\r\n", nil, "a\nb\n"},
		{"only one terminator dropped", "a,b\n\n", nil, "a\nb\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"split"}, tt.args...)
			out, _, err := run(t, tt.stdin, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTrimLineEnd(t *testing.T) {
	assert.Equal(t, "a", trimLineEnd("a\r\n"))
	assert.Equal(t, "a", trimLineEnd("a\n"))
	assert.Equal(t, "a", trimLineEnd("a\r"))
	assert.Equal(t, "a\n", trimLineEnd("a\n\n"))
	assert.Equal(t, "", trimLineEnd(""))
}

func TestSplit_Lines(t *testing.T) {
	out, _, err := run(t, "a, \"x,y\"\nb,c\n", "split", "-l", "-t", "-q", `""`)
	require.NoError(t, err)
	assert.Equal(t, "a\t\"x,y\"\nb\tc\n", out)
}

func TestSplit_LinesParallelKeepsOrder(t *testing.T) {
	var in, want strings.Builder
	for i := range 200 {
		fmt.Fprintf(&in, "%d,\"%d,x\"\n", i, i)
		fmt.Fprintf(&want, "%d\t\"%d,x\"\n", i, i)
	}
	out, _, err := run(t, in.String(), "split", "-l", "-j", "8", "-q", `""`)
	require.NoError(t, err)
	assert.Equal(t, want.String(), out)
}

func TestSplit_Files(t *testing.T) {
	a := writeFile(t, "a.txt", "1,2")
	b := writeFile(t, "b.txt", "3")
	out, _, err := run(t, "", "split", a, b)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestSplit_Verbose(t *testing.T) {
	_, errOut, err := run(t, `a,"b,c",d`, "split", "--verbose", "-q", `""`)
	require.NoError(t, err)
	assert.Equal(t, "-: 3 segments, 9 bytes\n", errOut)
}

func TestSplit_MissingFile(t *testing.T) {
	_, _, err := run(t, "", "split", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}

func TestSplit_InvalidQuotePair(t *testing.T) {
	_, _, err := run(t, "a,b", "split", "-q", `"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid quote pair")
}

func TestFind(t *testing.T) {
	out, _, err := run(t, `a,"b,c",d`, "find", "-q", `""`)
	require.NoError(t, err)
	assert.Equal(t, "1\t1\t0\n7\t1\t0\n", out)
}

func TestFind_WhichAndPrefix(t *testing.T) {
	a := writeFile(t, "a.txt", "x;y,z")
	b := writeFile(t, "b.txt", "q")
	out, errOut, err := run(t, "", "find", "--verbose", "-d", ",;", a, b)
	require.NoError(t, err)
	assert.Equal(t, a+":1\t1\t1\n"+a+":3\t1\t0\n", out)
	assert.Equal(t, a+": 2 hits\n"+b+": 0 hits\n", errOut)
}

func TestColorDisabledForBuffers(t *testing.T) {
	a := &app{out: &bytes.Buffer{}}
	assert.False(t, a.colorEnabled(false))
	assert.False(t, a.colorEnabled(true))
}

func TestWriteRow_Color(t *testing.T) {
	var buf bytes.Buffer
	writeRow(&buf, []string{"a", "b"}, "\t", true)
	assert.Equal(t, colorSegment+"a"+colorReset+"\t"+colorSegment+"b"+colorReset+"\n", buf.String())
}

func TestParseKey(t *testing.T) {
	_, err := parseKey("", false)
	assert.ErrorIs(t, err, errEmptyDelim)

	_, err = parseKey("::", true)
	assert.NoError(t, err)
}

func TestParseRule(t *testing.T) {
	rule, err := parseRule(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, quote.None, rule.Kind())

	rule, err = parseRule([]string{`""`, "()"}, nil)
	require.NoError(t, err)
	assert.Equal(t, quote.MultiPair, rule.Kind())

	rule, err = parseRule(nil, []string{"[]"})
	require.NoError(t, err)
	assert.Equal(t, quote.TwoLayer, rule.Kind())
	assert.Equal(t, quote.None, rule.Primary().Kind())

	_, err = parseRule([]string{"«»"}, []string{"abc"})
	assert.ErrorContains(t, err, `invalid quote pair "abc"`)
}
