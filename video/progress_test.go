package video

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanProgress(t *testing.T) {
	output := strings.Join([]string{
		"frame=100",
		"fps=25.0",
		"out_time_ms=2500000",
		"progress=continue",
		"out_time_ms=5000000",
		"progress=end",
	}, "\n")

	var readings []float64
	scanProgress(strings.NewReader(output), func(seconds float64) {
		readings = append(readings, seconds)
	})

	require.Len(t, readings, 2)
	assert.InDelta(t, 2.5, readings[0], 1e-9)
	assert.InDelta(t, 5.0, readings[1], 1e-9)
}

func TestScanProgressClockFallback(t *testing.T) {
	output := "out_time=00:01:30.500000\n"

	var readings []float64
	scanProgress(strings.NewReader(output), func(seconds float64) {
		readings = append(readings, seconds)
	})

	require.Len(t, readings, 1)
	assert.InDelta(t, 90.5, readings[0], 1e-6)
}

func TestScanProgressIgnoresGarbage(t *testing.T) {
	output := strings.Join([]string{
		"out_time_ms=N/A",
		"out_time=bogus",
		"out_time_ms=-1",
		"speed=1.5x",
	}, "\n")

	called := false
	scanProgress(strings.NewReader(output), func(float64) { called = true })

	assert.False(t, called)
}

func TestClockToSeconds(t *testing.T) {
	tests := []struct {
		clock string
		want  float64
		ok    bool
	}{
		{clock: "00:00:05.000000", want: 5, ok: true},
		{clock: "01:02:03.500000", want: 3723.5, ok: true},
		{clock: "90", ok: false},
		{clock: "a:b:c", ok: false},
	}

	for _, tt := range tests {
		got, ok := clockToSeconds(tt.clock)
		assert.Equal(t, tt.ok, ok, tt.clock)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-6, tt.clock)
		}
	}
}

func TestProbeResultDuration(t *testing.T) {
	pr := &ProbeResult{Format: Format{Duration: "42.750000"}}

	d, err := pr.Duration()
	require.NoError(t, err)
	assert.InDelta(t, 42.75, d, 1e-9)
}

func TestProbeResultDurationMissing(t *testing.T) {
	pr := &ProbeResult{}

	_, err := pr.Duration()
	require.Error(t, err)

	var encodeErr *EncodeError
	assert.ErrorAs(t, err, &encodeErr)
}

func TestProbeResultHasStream(t *testing.T) {
	pr := &ProbeResult{Streams: []Stream{
		{CodecType: "video", CodecName: "h264"},
		{CodecType: "audio", CodecName: "aac"},
	}}

	assert.True(t, pr.HasStream("video"))
	assert.True(t, pr.HasStream("audio"))
	assert.False(t, pr.HasStream("subtitle"))
}
