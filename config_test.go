package arenajson

import (
	"bytes"
	"flag"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/go-kit/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-arenajson.page-size=64KB", "-arenajson.max-memory=1MB"}))
	assert.Equal(t, 64*datasize.KB, cfg.PageSize)
	assert.Equal(t, datasize.MB, cfg.MaxMemory)
	assert.NoError(t, cfg.Validate())

	assert.Error(t, fs.Parse([]string{"-arenajson.page-size=lots"}))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		ok   bool
	}{
		{"default", nil, true},
		{"minimum page", []Option{WithPageSize(MinPageSize)}, true},
		{"tiny page", []Option{WithPageSize(16)}, false},
		{"limit", []Option{WithMaxMemory(datasize.MB)}, true},
		{"limit below page", []Option{WithPageSize(64 * datasize.KB), WithMaxMemory(32 * datasize.KB)}, false},
		{"zero config", []Option{WithConfig(Config{})}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(`[]`, tt.opts...)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrParse), "config errors are not parse errors: %v", err)
		})
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogfmtLogger(&buf)

	doc, err := Parse(`{"a": 1}`, WithLogger(logger), WithPageSize(MinPageSize))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `level=debug msg="arena page allocated"`)
	assert.Contains(t, buf.String(), `level=debug msg="parsed document" bytes=8`)

	buf.Reset()
	assert.Error(t, doc.SetKey("b", "[1,"))
	assert.Contains(t, buf.String(), `msg="parse failed" fragment=true bytes=3`)

	buf.Reset()
	_, err = Parse(`[1 2]`, WithLogger(logger))
	assert.Error(t, err)
	assert.Contains(t, buf.String(), `msg="parse failed" fragment=false bytes=5 err="unexpected lex-num_2 at line 1, column 4; expected delimiter after lex-num_1"`)

	buf.Reset()
	assert.Error(t, doc.RemoveKey("zz"))
	assert.Contains(t, buf.String(), `msg="mutation failed" type=Object`)

	// nil disables logging
	_, err = Parse(`[]`, WithLogger(nil))
	assert.NoError(t, err)
}
