package editor

import (
	"bytes"
	"errors"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackedit/internal/geom"
	"trackedit/internal/render"
	"trackedit/internal/track"
)

type memSink struct {
	name    string
	payload []byte
	err     error
}

func (m *memSink) Save(name string, payload []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.name, m.payload = name, payload
	return "mem://" + name, nil
}

func newEditor(t *testing.T, sink Sink) *Editor {
	t.Helper()
	e, err := New(Options{
		Bounds:      track.Bounds{Width: 600, Height: 400},
		Params:      track.DefaultParams(),
		MaxAttempts: track.DefaultMaxAttempts,
		Rand:        rand.New(rand.NewPCG(1, 2)),
		Sink:        sink,
	})
	require.NoError(t, err)
	return e
}

func TestStoreClosedView(t *testing.T) {
	var s Store
	assert.Nil(t, s.Points())
	assert.True(t, s.Empty())

	s.Append(geom.Pt(1, 1))
	assert.Equal(t, []geom.Point{{1, 1, 0}, {1, 1, 0}}, s.Points())

	s.Append(geom.Pt(2, 3))
	s.Append(geom.Pt(5, 8))
	assert.Equal(t, []geom.Point{{1, 1, 0}, {2, 3, 0}, {5, 8, 0}, {1, 1, 0}}, s.Points())
	assert.Equal(t, 3, s.Len())
}

func TestStoreAppendKeepsLoopClosed(t *testing.T) {
	var s Store
	s.ReplaceAll([]geom.Point{{10, 10, 0}, {20, 10, 0}, {10, 10, 0}})
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 50; i++ {
		s.Append(geom.Pt(rng.Float64()*600, rng.Float64()*400))
		pts := s.Points()
		assert.Equal(t, pts[0], pts[len(pts)-1])
		assert.Equal(t, geom.Point{X: 10, Y: 10}, pts[0])
	}
	assert.Equal(t, 52, s.Len())
}

func TestStoreReplaceAll(t *testing.T) {
	var s Store
	src := []geom.Point{{1, 2, 0}, {3, 4, 0}, {1, 2, 0}}
	s.ReplaceAll(src)
	assert.Equal(t, []geom.Point{{1, 2, 0}, {3, 4, 0}}, s.Open())
	assert.Equal(t, src, s.Points())

	src[0].X = 99
	assert.Equal(t, 1.0, s.Points()[0].X)

	s.ReplaceAll([]geom.Point{{1, 2, 0}, {3, 4, 0}})
	assert.Equal(t, []geom.Point{{1, 2, 0}, {3, 4, 0}, {1, 2, 0}}, s.Points())

	s.ReplaceAll([]geom.Point{{7, 7, 0}})
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Nil(t, s.Points())
	assert.Equal(t, geom.BBox{}, s.Bounds())
}

func TestToggleTwiceRestores(t *testing.T) {
	s0 := DefaultState()
	assert.Equal(t, "show control points", Label(s0, ToggleControlPoints))

	s1 := Apply(s0, ToggleControlPoints)
	assert.True(t, s1.ShowControlPoints)
	assert.Equal(t, "hide control points", Label(s1, ToggleControlPoints))

	s2 := Apply(s1, ToggleControlPoints)
	assert.Equal(t, s0, s2)
	assert.Equal(t, "show control points", Label(s2, ToggleControlPoints))
}

func TestTogglesAreIndependent(t *testing.T) {
	s := DefaultState()
	assert.Equal(t, State{ShowTrackLines: true}, s)

	s = Apply(s, ToggleGrass)
	assert.Equal(t, State{GrassBackground: true, ShowTrackLines: true}, s)
	assert.Equal(t, "hide grass image", Label(s, ToggleGrass))
	assert.Equal(t, "hide track lines", Label(s, ToggleTrackLines))

	s = Apply(s, ToggleTrackLines)
	assert.Equal(t, State{GrassBackground: true}, s)
	assert.Equal(t, "show track lines", Label(s, ToggleTrackLines))

	assert.Equal(t, s, Apply(s, GenerateTrack))
	assert.Equal(t, s, Apply(s, SavePoints))
}

func TestEditorGenerate(t *testing.T) {
	e := newEditor(t, &memSink{})
	msg, err := e.Do(GenerateTrack)
	require.NoError(t, err)
	assert.Contains(t, msg, "generated")
	require.NotNil(t, e.LastGen)

	pts := e.Store.Points()
	assert.Equal(t, e.LastGen.Points, pts)
	assert.Equal(t, pts[0], pts[len(pts)-1])
	for _, p := range pts {
		assert.True(t, geom.Contains(p, 600, 400))
	}
}

func TestEditorGenerateFailureKeepsStore(t *testing.T) {
	e, err := New(Options{
		Bounds:      track.Bounds{Width: 5, Height: 5},
		Params:      track.DefaultParams(),
		MaxAttempts: 3,
		Rand:        rand.New(rand.NewPCG(1, 1)),
		Sink:        &memSink{},
	})
	require.NoError(t, err)
	e.Click(1, 1)
	_, err = e.Do(GenerateTrack)
	assert.ErrorIs(t, err, track.ErrAttemptsExhausted)
	assert.Equal(t, 1, e.Store.Len())
}

func TestNewRejectsBadConfig(t *testing.T) {
	p := track.DefaultParams()
	p.Min = p.Max
	_, err := New(Options{Bounds: track.Bounds{Width: 600, Height: 400}, Params: p})
	assert.ErrorIs(t, err, track.ErrInvalidParams)

	_, err = New(Options{Bounds: track.Bounds{Width: 0, Height: 400}, Params: track.DefaultParams()})
	assert.Error(t, err)
}

func TestEditorClickBounds(t *testing.T) {
	e := newEditor(t, &memSink{})
	assert.True(t, e.Click(0, 0))
	assert.True(t, e.Click(600, 400))
	assert.False(t, e.Click(-1, 10))
	assert.False(t, e.Click(10, 401))
	assert.False(t, e.Click(601, 0))
	assert.Equal(t, 2, e.Store.Len())
}

func TestEditorLoadRejectsOutOfCanvas(t *testing.T) {
	e := newEditor(t, &memSink{})
	require.NoError(t, e.Load([]geom.Point{{0, 0, 0}, {600, 400, 0}, {0, 0, 0}}))
	assert.Equal(t, 2, e.Store.Len())

	bad := map[string]geom.Point{
		"huge x":   {1e12, 10, 0},
		"negative": {-1, 10, 0},
		"nan":      {math.NaN(), 10, 0},
		"inf z":    {10, 10, math.Inf(1)},
	}
	for name, p := range bad {
		t.Run(name, func(t *testing.T) {
			err := e.Load([]geom.Point{{100, 100, 0}, p, {200, 100, 0}})
			assert.ErrorIs(t, err, ErrOutOfCanvas)
			assert.Equal(t, []geom.Point{{0, 0, 0}, {600, 400, 0}}, e.Store.Open())
		})
	}
}

func TestEditorSave(t *testing.T) {
	sink := &memSink{}
	e := newEditor(t, sink)

	msg, err := e.Do(SavePoints)
	require.NoError(t, err)
	assert.Equal(t, ExportName, sink.name)
	assert.Empty(t, sink.payload)
	assert.Contains(t, msg, "saved 0 points")

	e.Click(1, 2)
	e.Click(3, 4)
	msg, err = e.Do(SavePoints)
	require.NoError(t, err)
	assert.Contains(t, msg, "saved 2 points")
	assert.Equal(t, "1.00,2.00,0.00\n3.00,4.00,0.00\n1.00,2.00,0.00\n", string(sink.payload))

	sink.err = errors.New("disk full")
	_, err = e.Do(SavePoints)
	assert.EqualError(t, err, "disk full")
}

func TestEditorClearAndToggle(t *testing.T) {
	e := newEditor(t, &memSink{})
	_, err := e.Do(GenerateTrack)
	require.NoError(t, err)
	_, err = e.Do(ClearPoints)
	require.NoError(t, err)
	assert.True(t, e.Store.Empty())
	assert.Nil(t, e.LastGen)

	label, err := e.Do(ToggleGrass)
	require.NoError(t, err)
	assert.Equal(t, "hide grass image", label)
	assert.True(t, e.State.GrassBackground)

	_, err = e.Do(Command(42))
	assert.Error(t, err)
}

func TestDirSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	p, err := DirSink{Dir: dir}.Save(ExportName, []byte("1.00,2.00,0.00\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ExportName), p)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "1.00,2.00,0.00\n", string(b))
}

func TestEditorFrameFollowsState(t *testing.T) {
	e := newEditor(t, &memSink{})
	style := render.DefaultStyle()

	rec := render.NewRecorder(600, 400)
	e.Frame(rec, style, nil)
	assert.Zero(t, rec.Segments())

	e.Click(100, 100)
	e.Click(200, 100)
	e.Click(200, 200)
	rec.Reset()
	e.Frame(rec, style, nil)
	assert.Equal(t, 2, rec.Count(render.OpStroke), "body and center line")
	assert.Zero(t, rec.Count(render.OpRect))

	e.State = Apply(e.State, ToggleControlPoints)
	e.State = Apply(e.State, ToggleTrackLines)
	rec.Reset()
	e.Frame(rec, style, nil)
	assert.Equal(t, 1, rec.Count(render.OpStroke))
	assert.Equal(t, 4, rec.Count(render.OpRect))

	_, err := e.Do(ClearPoints)
	require.NoError(t, err)
	rec.Reset()
	e.Frame(rec, style, nil)
	assert.Zero(t, rec.Segments())
}

func TestEditorPNG(t *testing.T) {
	sink := &memSink{}
	e := newEditor(t, sink)
	_, err := e.Generate()
	require.NoError(t, err)
	b, err := e.PNG(render.DefaultStyle(), nil, 1)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))

	p, err := e.SaveAs("track.png", b)
	require.NoError(t, err)
	assert.Equal(t, "mem://track.png", p)
	assert.Equal(t, b, sink.payload)
}
