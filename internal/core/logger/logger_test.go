package logger

import (
	"bytes"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"cat-cafe/internal/core/config"
)

func TestBuild_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l, cleanup := build(Options{Level: "warn", JSON: true}, &buf)
	defer cleanup()

	l.Info("hidden")
	l.Warn("shown")
	_ = l.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
}

func TestToWriterAndStdLog(t *testing.T) {
	var buf bytes.Buffer
	l, cleanup := build(Options{Level: "debug", JSON: true}, &buf)
	defer cleanup()

	_, _ = ToWriter(l, zapcore.InfoLevel).Write([]byte("[GIN-debug] GET /cats\n"))
	undo := RedirectStdLog(l, zapcore.WarnLevel)
	log.Print("from std log")
	undo()
	_ = l.Sync()

	out := buf.String()
	assert.Contains(t, out, `"msg":"[GIN-debug] GET /cats"`)
	assert.Contains(t, out, "from std log")
}

func TestFromConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	o := FromConfig(config.Log{Level: "debug", JSON: true, Rotate: config.Rotate{Enable: true, Filename: file, MaxSizeMB: 1}})
	assert.Equal(t, "debug", o.Level)
	assert.True(t, o.Rotate.Enable)
	assert.Equal(t, file, o.Rotate.Filename)

	l, cleanup := New(o)
	l.Info("to file")
	cleanup()
	assert.FileExists(t, file)
}
