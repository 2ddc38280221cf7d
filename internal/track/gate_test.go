package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackedit/internal/geom"
)

func assertClosedInside(t *testing.T, pts []geom.Point, w, h float64) {
	t.Helper()
	require.NotEmpty(t, pts)
	assert.Equal(t, pts[0], pts[len(pts)-1])
	for i, p := range pts {
		assert.True(t, geom.Contains(p, w, h), "point %d %+v outside", i, p)
	}
}

func TestGenerateValidSmallWalk(t *testing.T) {
	p := Params{Min: 10, Max: 20, MinSegmentLength: 1, MaxSegmentLength: 2, Curviness: 1, MaxAngle: 90, Origin: DefaultOrigin}
	res, err := GenerateValid(newRand(5), Bounds{Width: 600, Height: 400}, p, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Attempts)
	assert.Len(t, res.Points, res.Track.Points+1)
	assertClosedInside(t, res.Points, 600, 400)
}

func TestGenerateValidTrackDefaults(t *testing.T) {
	for seed := uint64(1); seed <= 3; seed++ {
		pts, err := GenerateValidTrack(newRand(seed), 600, 400)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(pts), 101)
		assert.LessOrEqual(t, len(pts), 200)
		assertClosedInside(t, pts, 600, 400)
	}
}

func TestGenerateValidExhausted(t *testing.T) {
	// the seed itself lies outside a 10x10 canvas
	_, err := GenerateValid(newRand(9), Bounds{Width: 10, Height: 10}, DefaultParams(), 25)
	assert.ErrorIs(t, err, ErrAttemptsExhausted)
	assert.Contains(t, err.Error(), "25 attempts")
}

func TestGenerateValidRejectsBadParams(t *testing.T) {
	p := DefaultParams()
	p.Curviness = 0
	_, err := GenerateValid(newRand(1), Bounds{Width: 600, Height: 400}, p, 0)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestGenerateValidDoesNotAliasTrack(t *testing.T) {
	res, err := GenerateValid(newRand(2), Bounds{Width: 600, Height: 400}, straightParams(), 0)
	require.NoError(t, err)
	res.Points[0].X = -1
	assert.Equal(t, 300.0, res.Track.Data[0].X)
}
