package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopYAML = `
data:
  name: Order
  fields:
    - name: id
      type: string
  required: [id]
---
model:
  name: Shop
  behavior:
    - name: place
      input:
        - name: order
          type: Order
`

func setup(t *testing.T, content string) string {
	t.Helper()
	// Keep config lookup away from the developer's own files
	for _, name := range []string{"AAC_CONFIG", "AAC_LOG_LEVEL", "AAC_LOG_FORMAT", "AAC_OUTPUT_FORMAT", "AAC_STRICT"} {
		t.Setenv(name, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "shop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func invoke(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunValidate(t *testing.T) {
	path := setup(t, shopYAML)

	code, stdout, _ := invoke("validate", path)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "ok")
}

func TestRunExport(t *testing.T) {
	path := setup(t, shopYAML)

	code, stdout, _ := invoke("puml", path)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "@startuml\ninterface Order\nOrder -> [Shop] : order\n@enduml\n", stdout)

	out := filepath.Join(t.TempDir(), "shop.json")
	code, stdout, _ = invoke("-o", out, "json", path)
	require.Equal(t, exitOK, code)
	assert.Empty(t, stdout)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Order.id"`)
}

func TestRunSpec(t *testing.T) {
	path := setup(t, shopYAML)

	code, stdout, _ := invoke("spec", path)
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "name: Shop")
}

func TestRunValidationFailure(t *testing.T) {
	path := setup(t, "model:\n  name: Shop\n  components:\n    - name: x\n      type: Nope\n")

	code, _, stderr := invoke("-log-level", "error", "validate", path)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "validation failed")
	assert.Contains(t, stderr, "uses undefined type Nope")
}

func TestRunStrictFlag(t *testing.T) {
	path := setup(t, "enum:\n  name: E\n  values: [a, a]\n---\nmodel:\n  name: M\n")

	code, _, _ := invoke("validate", path)
	assert.Equal(t, exitOK, code)

	code, _, _ = invoke("-strict", "validate", path)
	assert.Equal(t, exitFailure, code)
}

func TestRunUsage(t *testing.T) {
	path := setup(t, shopYAML)

	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"missing file", []string{"json"}},
		{"unknown command", []string{"dot", path}},
		{"unknown flag", []string{"-bogus", "json", path}},
		{"missing config", []string{"-config", "/nonexistent/aac.yaml", "json", path}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := invoke(tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.NotEmpty(t, stderr)
		})
	}
}

func TestRunConfigFile(t *testing.T) {
	path := setup(t, "enum:\n  name: E\n  values: [a, a]\n---\nmodel:\n  name: M\n")
	cfgPath := filepath.Join(t.TempDir(), "aac.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("validation:\n  strict: true\n"), 0644))

	code, _, _ := invoke("-config", cfgPath, "validate", path)
	assert.Equal(t, exitFailure, code)

	code, _, _ = invoke("-config", cfgPath, "-strict=false", "validate", path)
	assert.Equal(t, exitOK, code)
}

// syncBuffer lets the test read output while the watch loop writes it
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunWatch(t *testing.T) {
	path := setup(t, shopYAML)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var stdout, stderr syncBuffer
	done := make(chan int, 1)
	go func() {
		done <- run(ctx, []string{"-watch", "validate", path}, &stdout, &stderr)
	}()

	require.Eventually(t, func() bool {
		return strings.Count(stdout.String(), ": ok") == 1
	}, 5*time.Second, 10*time.Millisecond)

	// Let the watcher register before touching the file
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(shopYAML+"\n"), 0644))

	require.Eventually(t, func() bool {
		return strings.Count(stdout.String(), ": ok") >= 2
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case code := <-done:
		assert.Equal(t, exitOK, code)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestRunExportUsesConfiguredFormat(t *testing.T) {
	path := setup(t, shopYAML)

	code, stdout, _ := invoke("export", path)
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, `"architecture"`, "json is the default format")

	t.Setenv("AAC_OUTPUT_FORMAT", "puml")
	code, stdout, _ = invoke("export", path)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "@startuml\ninterface Order\nOrder -> [Shop] : order\n@enduml\n", stdout)

	code, stdout, _ = invoke("-format", "yaml", "export", path)
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "architecture:")

	cfgPath := filepath.Join(t.TempDir(), "aac.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: dot\n"), 0644))
	t.Setenv("AAC_OUTPUT_FORMAT", "")
	code, _, stderr := invoke("-config", cfgPath, "export", path)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "unknown format")
}
