package cache

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savdoai/console-api/pkg/metrics"
)

func TestMain(m *testing.M) {
	metrics.Init("test")
	os.Exit(m.Run())
}

func TestTariffsCache_SetAndGet(t *testing.T) {
	tc := NewTariffsCache(600)

	_, found := tc.Get()
	assert.False(t, found)

	payload := json.RawMessage(`[{"id":1,"name":"basic"}]`)
	tc.Set(payload)

	got, found := tc.Get()
	require.True(t, found)
	assert.JSONEq(t, string(payload), string(got))
}

func TestTariffsCache_Invalidate(t *testing.T) {
	tc := NewTariffsCache(600)
	tc.Set(json.RawMessage(`[]`))

	tc.Invalidate()

	_, found := tc.Get()
	assert.False(t, found)
}

func TestTariffsCache_Expiry(t *testing.T) {
	tc := NewTariffsCache(1)
	tc.Set(json.RawMessage(`[]`))

	_, found := tc.Get()
	require.True(t, found)

	time.Sleep(1100 * time.Millisecond)

	_, found = tc.Get()
	assert.False(t, found)
}
