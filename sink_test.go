package seqstore

import (
	"bytes"
	"testing"

	"github.com/cqkv/seqstore/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologSink(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	store := openItemStore(t, WithSink(NewZerologSink(logger)))
	require.NoError(t, store.Append(&model.Item{Content: "logged"}))

	out := buf.String()
	assert.Contains(t, out, `"module":"seqstore"`)
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, "header count 0 -> 1")
}

func TestNopSink(t *testing.T) {
	store := openItemStore(t, WithSink(nil))
	assert.Nil(t, store.Append(&model.Item{}))
	NopSink.Narrate("ignored")
}
