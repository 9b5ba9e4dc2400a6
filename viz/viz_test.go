package viz_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yezhuoyang/HGPCode/classical"
	"github.com/yezhuoyang/HGPCode/hgp"
	"github.com/yezhuoyang/HGPCode/sim"
	"github.com/yezhuoyang/HGPCode/viz"
)

// newSession builds a 13-qubit session with one bit-flip error placed.
func newSession(t *testing.T) *sim.Session {
	t.Helper()
	rep, err := classical.Repetition(3)
	require.NoError(t, err)
	code, err := hgp.Construct(rep, rep)
	require.NoError(t, err)
	sess, err := sim.NewSession(code)
	require.NoError(t, err)
	require.NoError(t, sess.ToggleX(4))
	return sess
}

// TestRenderHTML_EmitsLattice checks the page renders and mentions every
// node class: data qubits, check qubits, X-checks, Z-checks.
func TestRenderHTML_EmitsLattice(t *testing.T) {
	sess := newSession(t)

	var buf bytes.Buffer
	require.NoError(t, viz.RenderHTML(&buf, sess))
	html := buf.String()

	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "d(0,0)")
	assert.Contains(t, html, "d(2,2)")
	assert.Contains(t, html, "c(1,1)")
	assert.Contains(t, html, "X5")
	assert.Contains(t, html, "Z5")
	assert.Contains(t, html, "X syndrome")
	assert.Contains(t, html, "Z syndrome")
}

// TestRenderHTML_NilSession covers the nil guard.
func TestRenderHTML_NilSession(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, viz.RenderHTML(&buf, nil), viz.ErrNilSession)
}

// TestRenderHTML_TitleOption verifies WithTitle lands in the page and that
// the empty title panics per the option contract.
func TestRenderHTML_TitleOption(t *testing.T) {
	sess := newSession(t)

	var buf bytes.Buffer
	require.NoError(t, viz.RenderHTML(&buf, sess, viz.WithTitle("toric teaching demo")))
	assert.True(t, strings.Contains(buf.String(), "toric teaching demo"))

	defer func() {
		if recover() == nil {
			t.Error("WithTitle(\"\") did not panic")
		}
	}()
	_ = viz.WithTitle("")
}

// TestWriteHTMLFile writes into a temp dir and checks the file is non-trivial.
func TestWriteHTMLFile(t *testing.T) {
	sess := newSession(t)
	path := filepath.Join(t.TempDir(), "lattice.html")

	require.NoError(t, viz.WriteHTMLFile(path, sess))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Greater(t, len(data), 1000, "rendered page suspiciously small")
}
