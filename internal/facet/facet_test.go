package facet

import (
	"testing"

	"github.com/annel0/waterworld/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceHeightFacet_WorldAccess(t *testing.T) {
	f := NewSurfaceHeightFacet(vec.NewRect(-4, 10, 4, 4), 2)

	assert.Equal(t, SurfaceHeight, f.Type())
	assert.Equal(t, vec.NewRect(-4, 10, 4, 4), f.WorldRegion())
	assert.Equal(t, vec.NewRect(-6, 8, 8, 8), f.StorageRegion())

	f.SetWorld(-4, 10, 12.5)
	f.SetWorld(-6, 8, -1) // рамка доступна
	assert.Equal(t, float32(12.5), f.GetWorld(-4, 10))
	assert.Equal(t, float32(-1), f.GetWorld(-6, 8))
	assert.Equal(t, float32(0), f.GetWorld(-1, 13))
}

func TestSurfaceHeightFacet_OutOfStoragePanics(t *testing.T) {
	f := NewSurfaceHeightFacet(vec.NewRect(0, 0, 4, 4), 1)

	assert.True(t, f.InStorage(-1, -1))
	assert.False(t, f.InStorage(5, 0))
	assert.Panics(t, func() { f.GetWorld(5, 0) })
	assert.Panics(t, func() { f.SetWorld(0, -2, 1) })
}

func TestSurfaceHeightFacet_FillAndStats(t *testing.T) {
	f := NewSurfaceHeightFacet(vec.NewRect(0, 0, 2, 2), 1)
	f.Fill(10)
	f.SetWorld(1, 1, 30)
	f.SetWorld(-1, -1, 1000) // рамка не входит в статистику

	stats := f.Stats()
	assert.Equal(t, 4, stats.Cells)
	assert.Equal(t, float32(10), stats.Min)
	assert.Equal(t, float32(30), stats.Max)
	assert.InDelta(t, 15.0, stats.Mean, 1e-9)

	assert.Equal(t, HeightStats{}, NewSurfaceHeightFacet(vec.NewRect(0, 0, 0, 0), 0).Stats())
}

func TestSurfaceHeightFacet_CopyInto(t *testing.T) {
	dst := NewSurfaceHeightFacet(vec.NewRect(0, 0, 8, 8), 0)
	src := NewSurfaceHeightFacet(vec.NewRect(4, 2, 3, 2), 1)
	src.Fill(7)

	require.NoError(t, src.CopyInto(dst))

	dst.WorldRegion().ForEach(func(p vec.Vec2) {
		want := float32(0)
		if src.WorldRegion().Contains(p) {
			want = 7
		}
		assert.Equal(t, want, dst.GetWorld(p.X, p.Y), "позиция %v", p)
	})

	outside := NewSurfaceHeightFacet(vec.NewRect(6, 6, 4, 4), 0)
	assert.Error(t, outside.CopyInto(dst))
}

func TestRegion_Facets(t *testing.T) {
	region := NewRegion(vec.NewRect(0, 0, 16, 16), -3)
	assert.Equal(t, 0, region.Border())
	assert.False(t, region.Has(SurfaceHeight))

	_, err := region.SurfaceHeight()
	assert.ErrorIs(t, err, ErrMissingFacet)

	f := NewSurfaceHeightFacet(region.Bounds(), region.Border())
	region.SetFacet(f)

	got, err := region.SurfaceHeight()
	require.NoError(t, err)
	assert.Same(t, f, got)
}

type fakeFacet struct{}

func (fakeFacet) Type() Type { return SurfaceHeight }
func (fakeFacet) WorldRegion() vec.Rect { return vec.Rect{} }

func TestRegion_SurfaceHeightWrongType(t *testing.T) {
	region := NewRegion(vec.NewRect(0, 0, 1, 1), 0)
	region.SetFacet(fakeFacet{})

	_, err := region.SurfaceHeight()
	assert.ErrorIs(t, err, ErrMissingFacet)
}
