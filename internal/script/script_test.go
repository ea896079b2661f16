package script_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/bigfatbird/gosub-browser/dom"
	"github.com/bigfatbird/gosub-browser/dom/builder"
	"github.com/bigfatbird/gosub-browser/dom/printer"
	"github.com/bigfatbird/gosub-browser/dom/tasks"
	"github.com/bigfatbird/gosub-browser/internal/script"
)

const sampleScript = `# sample document
element div root div
element p div p

comment p comment inside p
text p hey
comment div comment inside div
attr p id myid
`

func TestParse(t *testing.T) {
	ins, err := script.Parse(strings.NewReader(sampleScript), script.Options{})
	require.NoError(t, err)
	require.Len(t, ins, 6)

	require.Equal(t, script.KindElement, ins[0].Kind)
	require.Equal(t, "div", ins[0].Label)
	require.Equal(t, "root", ins[0].Target)
	require.Equal(t, dom.HTMLNamespace, ins[0].Namespace)

	require.Equal(t, script.KindText, ins[3].Kind)
	require.Equal(t, "hey", ins[3].Value)

	require.Equal(t, script.KindAttr, ins[5].Kind)
	require.Equal(t, "id", ins[5].Name)
	require.Equal(t, "myid", ins[5].Value)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		target error
	}{
		{"unknown verb", "frobnicate a b\n", script.ErrUnknownInstruction},
		{"element arity", "element onlylabel\n", script.ErrBadArity},
		{"text arity", "text\n", script.ErrBadArity},
		{"attr arity", "attr onlytarget\n", script.ErrBadArity},
		{"duplicate label", "element a root div\nelement a root div\n", script.ErrDuplicateLabel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := script.Parse(strings.NewReader(tc.input), script.Options{})
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestParseLatin1(t *testing.T) {
	// "café" encoded as Windows-1252: é is byte 0xE9.
	raw, err := charmap.Windows1252.NewEncoder().Bytes([]byte("text root café\n"))
	require.NoError(t, err)

	ins, err := script.Parse(strings.NewReader(string(raw)), script.Options{Latin1: true})
	require.NoError(t, err)
	require.Len(t, ins, 1)
	require.Equal(t, "café", ins[0].Value)
}

func TestBuildImmediate(t *testing.T) {
	ins, err := script.Parse(strings.NewReader(sampleScript), script.Options{})
	require.NoError(t, err)

	document := builder.NewDocument()
	taskErrs, err := script.Build(document, ins)
	require.NoError(t, err)
	require.Empty(t, taskErrs)

	require.Equal(t, 6, document.NodeCount())
	require.Equal(t, `└─ Document
   └─ <div>
      ├─ <p id=myid>
      │  ├─ <!-- comment inside p -->
      │  └─ "hey"
      └─ <!-- comment inside div -->
`, printer.String(document))
}

func TestBuildDeferredMatchesImmediate(t *testing.T) {
	ins, err := script.Parse(strings.NewReader(sampleScript), script.Options{})
	require.NoError(t, err)

	direct := builder.NewDocument()
	_, err = script.Build(direct, ins)
	require.NoError(t, err)

	deferred := builder.NewDocument()
	queue := tasks.New(deferred)
	taskErrs, err := script.Build(queue, ins)
	require.NoError(t, err)
	require.Empty(t, taskErrs) // the queue never fails before the flush
	require.Empty(t, queue.Flush())

	require.Equal(t, printer.String(direct), printer.String(deferred))
}

func TestBuildCollectsTaskErrors(t *testing.T) {
	input := "element div root div\nattr div id bad id\n"
	ins, err := script.Parse(strings.NewReader(input), script.Options{})
	require.NoError(t, err)

	document := builder.NewDocument()
	taskErrs, err := script.Build(document, ins)
	require.NoError(t, err)
	require.Equal(t, []string{
		"document task error: Attribute value 'bad id' did not pass validation",
	}, taskErrs)
}

func TestBuildUnknownLabel(t *testing.T) {
	ins, err := script.Parse(strings.NewReader("text nowhere hey\n"), script.Options{})
	require.NoError(t, err)

	_, err = script.Build(builder.NewDocument(), ins)
	require.ErrorIs(t, err, script.ErrUnknownLabel)
}
