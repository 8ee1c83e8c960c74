package tessera

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type theme struct{ Dark bool }

type locale string

func TestParams_Lookup(t *testing.T) {
	var root *Params
	_, ok := Param[theme](root)
	assert.False(t, ok, "nil store is empty")
	assert.Equal(t, 0, root.Depth())
	assert.Nil(t, root.Parent())

	p := WithParam(root, theme{Dark: true})
	p = WithParam(p, locale("de"))

	th, ok := Param[theme](p)
	require.True(t, ok)
	assert.True(t, th.Dark)

	loc, ok := Param[locale](p)
	require.True(t, ok)
	assert.Equal(t, locale("de"), loc)

	_, ok = Param[string](p)
	assert.False(t, ok, "named types do not match their underlying type")

	assert.Equal(t, 2, p.Depth())
	assert.Equal(t, "fallback", ParamOr(p, "fallback"))
}

func TestParams_Shadowing(t *testing.T) {
	var root *Params
	parent := WithParam(root, theme{Dark: false})
	child := WithParam(parent, theme{Dark: true})

	th, _ := Param[theme](child)
	assert.True(t, th.Dark)

	th, _ = Param[theme](parent)
	assert.False(t, th.Dark, "parent layer is unaffected by the child")
	assert.Same(t, parent, child.Parent())
}

func TestParams_ConcurrentReads(t *testing.T) {
	var root *Params
	p := WithParam(root, theme{Dark: true})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			th, ok := Param[theme](WithParam(p, locale("en")))
			assert.True(t, ok)
			assert.True(t, th.Dark)
		}()
	}
	wg.Wait()
}

func TestProvide(t *testing.T) {
	label := ComponentFunc(func(rc *RenderContext) error {
		th := ParamOr(rc.Params(), theme{})
		if th.Dark {
			return rc.RenderLiteral("dark")
		}
		return rc.RenderLiteral("light")
	})

	nested := ComponentFunc(func(rc *RenderContext) error {
		if err := rc.RenderTemplate(label); err != nil {
			return err
		}
		return rc.RenderTemplate(Provide(label, theme{Dark: false}))
	})

	out, err := RenderToString(Provide(nested, theme{Dark: true}), ContentTypeHTML)
	require.NoError(t, err)
	assert.Equal(t, "darklight", out)

	out, err = RenderToString(label, ContentTypeHTML)
	require.NoError(t, err)
	assert.Equal(t, "light", out)
}
