// Package video wraps ffmpeg and ffprobe as the external processing engine.
//
// A Clip is a lazy render plan: subclip and concatenate operations only
// rearrange the plan, and no media work happens until Write.
package video

import "fmt"

// Segment is a [Start, End) range within a single source file.
type Segment struct {
	Source string
	Start  float64
	End    float64
}

func (s Segment) duration() float64 {
	return s.End - s.Start
}

// Clip is an opened video resource: an ordered list of source segments plus
// the total duration they cover.
type Clip struct {
	segments []Segment
	duration float64
	closed   bool
}

// Open probes the file and returns a clip spanning its full duration.
func Open(path string) (*Clip, error) {
	probe, err := Probe(path)
	if err != nil {
		return nil, err
	}

	duration, err := probe.Duration()
	if err != nil {
		return nil, err
	}

	return &Clip{
		segments: []Segment{{Source: path, Start: 0, End: duration}},
		duration: duration,
	}, nil
}

// Duration returns the clip duration in seconds.
func (c *Clip) Duration() float64 {
	return c.duration
}

// SubClip returns a new clip covering [start, end) of this clip. Bounds are
// clamped to the clip duration; callers validate ranges before narrowing.
func (c *Clip) SubClip(start, end float64) *Clip {
	if start < 0 {
		start = 0
	}
	if end > c.duration {
		end = c.duration
	}
	if end <= start {
		return &Clip{}
	}

	var out []Segment
	offset := 0.0 // position of the current segment within the clip timeline
	for _, seg := range c.segments {
		segStart, segEnd := offset, offset+seg.duration()
		offset = segEnd

		if segEnd <= start || segStart >= end {
			continue
		}

		// Overlap of [start, end) with this segment, in source time.
		from := seg.Start
		if start > segStart {
			from += start - segStart
		}
		to := seg.End
		if end < segEnd {
			to -= segEnd - end
		}
		out = append(out, Segment{Source: seg.Source, Start: from, End: to})
	}

	return &Clip{segments: out, duration: end - start}
}

// Concatenate joins clips end-to-end, preserving the given order.
func Concatenate(clips ...*Clip) *Clip {
	joined := &Clip{}
	for _, c := range clips {
		joined.segments = append(joined.segments, c.segments...)
		joined.duration += c.duration
	}
	return joined
}

// Segments returns a copy of the render plan.
func (c *Clip) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// Close releases the clip. Further writes fail. Closing twice is an error to
// catch lifecycle bugs early.
func (c *Clip) Close() error {
	if c.closed {
		return fmt.Errorf("clip already closed")
	}
	c.closed = true
	return nil
}
