package workspace

import (
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/symnorm/atom"
)

func TestAcquireRelease(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.workspace")
	defer teardown()
	//
	ws := New()
	b := ws.Acquire()
	b.Append(atom.NewInt(1), atom.NewInt(2))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 1, ws.Outstanding())
	b.Release()
	assert.Equal(t, 0, ws.Outstanding())
	assert.Equal(t, 1, ws.Pooled(0))
	b.Release() // no-op
	assert.Equal(t, 0, ws.Outstanding())
	c := ws.Acquire()
	assert.Same(t, b, c, "expected released buffer to be re-used")
	assert.Equal(t, 0, c.Len())
	c.Release()
}

func TestFramesPerDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.workspace")
	defer teardown()
	//
	ws := New()
	outer := ws.Acquire()
	func() {
		leave := ws.Enter()
		defer leave()
		assert.Equal(t, 1, ws.Depth())
		inner := ws.Acquire()
		defer inner.Release()
		assert.NotSame(t, outer, inner)
	}()
	assert.Equal(t, 0, ws.Depth())
	assert.Equal(t, 1, ws.Pooled(1))
	outer.Release()
	assert.Equal(t, 0, ws.Outstanding())
}

func TestUnbalancedLeave(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.workspace")
	defer teardown()
	//
	ws := New()
	leave1 := ws.Enter()
	ws.Enter()
	assert.Panics(t, func() { leave1() })
}

func TestMaxPooled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symnorm.workspace")
	defer teardown()
	//
	gconf.Initialize(testconfig.Conf{"workspace-max-pooled": "2"})
	defer gconf.Initialize(testconfig.Conf{})
	ws := New()
	bufs := []*Buffer{ws.Acquire(), ws.Acquire(), ws.Acquire()}
	for _, b := range bufs {
		b.Release()
	}
	assert.Equal(t, 2, ws.Pooled(0))
}
