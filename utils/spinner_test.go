package utils

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestSpinner_StartStop(t *testing.T) {
	var out syncBuffer

	StopSpinner()

	StartSpinner(&out)
	first := activeSpinner
	StartSpinner(&out)
	assert.Same(t, first, activeSpinner)

	StopSpinner()
	assert.Nil(t, activeSpinner)

	StopSpinner()
	assert.Nil(t, activeSpinner)
}

func TestDrawBanner(t *testing.T) {
	var buf bytes.Buffer
	DrawBanner(&buf)

	assert.Contains(t, buf.String(), "42 intra logtime tracker")
	assert.Greater(t, len(buf.String()), 100)
}
