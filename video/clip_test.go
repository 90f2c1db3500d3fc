package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceClip(path string, duration float64) *Clip {
	return &Clip{
		segments: []Segment{{Source: path, Start: 0, End: duration}},
		duration: duration,
	}
}

func TestSubClip(t *testing.T) {
	clip := sourceClip("a.mp4", 30)

	sub := clip.SubClip(10, 20)

	assert.InDelta(t, 10, sub.Duration(), 1e-9)
	require.Len(t, sub.Segments(), 1)
	assert.Equal(t, Segment{Source: "a.mp4", Start: 10, End: 20}, sub.Segments()[0])
}

func TestSubClipClampsBounds(t *testing.T) {
	clip := sourceClip("a.mp4", 30)

	sub := clip.SubClip(-5, 100)

	assert.InDelta(t, 30, sub.Duration(), 1e-9)
	require.Len(t, sub.Segments(), 1)
	assert.Equal(t, Segment{Source: "a.mp4", Start: 0, End: 30}, sub.Segments()[0])
}

func TestSubClipEmptyRange(t *testing.T) {
	clip := sourceClip("a.mp4", 30)

	sub := clip.SubClip(20, 20)

	assert.Zero(t, sub.Duration())
	assert.Empty(t, sub.Segments())
}

func TestConcatenatePreservesOrder(t *testing.T) {
	a := sourceClip("a.mp4", 12.5)
	b := sourceClip("b.mp4", 7.5)

	joined := Concatenate(a, b)

	assert.InDelta(t, 20.0, joined.Duration(), 1e-9)
	require.Len(t, joined.Segments(), 2)
	assert.Equal(t, "a.mp4", joined.Segments()[0].Source)
	assert.Equal(t, "b.mp4", joined.Segments()[1].Source)
}

func TestSubClipAcrossConcatenated(t *testing.T) {
	joined := Concatenate(sourceClip("a.mp4", 10), sourceClip("b.mp4", 10))

	// [5, 15) spans the join point: last 5s of a, first 5s of b.
	sub := joined.SubClip(5, 15)

	assert.InDelta(t, 10, sub.Duration(), 1e-9)
	require.Len(t, sub.Segments(), 2)
	assert.Equal(t, Segment{Source: "a.mp4", Start: 5, End: 10}, sub.Segments()[0])
	assert.Equal(t, Segment{Source: "b.mp4", Start: 0, End: 5}, sub.Segments()[1])
}

func TestSubClipSkipsNonOverlappingSegments(t *testing.T) {
	joined := Concatenate(sourceClip("a.mp4", 10), sourceClip("b.mp4", 10))

	sub := joined.SubClip(12, 18)

	require.Len(t, sub.Segments(), 1)
	assert.Equal(t, Segment{Source: "b.mp4", Start: 2, End: 8}, sub.Segments()[0])
}

func TestCloseTwice(t *testing.T) {
	clip := sourceClip("a.mp4", 10)

	require.NoError(t, clip.Close())
	assert.Error(t, clip.Close())
}

func TestWriteClosedClip(t *testing.T) {
	clip := sourceClip("a.mp4", 10)
	require.NoError(t, clip.Close())

	err := clip.Write(t.Context(), "out.mp4", Options{}, nil)
	require.Error(t, err)

	var encodeErr *EncodeError
	assert.ErrorAs(t, err, &encodeErr)
}

func TestWriteEmptyPlan(t *testing.T) {
	clip := &Clip{}

	err := clip.Write(t.Context(), "out.mp4", Options{}, nil)
	assert.Error(t, err)
}
