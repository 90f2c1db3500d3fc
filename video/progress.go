package video

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ProgressFunc receives the overall write progress as a fraction in [0, 1].
type ProgressFunc func(fraction float64)

// scanProgress reads ffmpeg -progress key=value lines and reports the encode
// position in seconds of output time.
func scanProgress(r io.Reader, report func(seconds float64)) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// out_time_ms is microseconds despite the name.
		if v, ok := strings.CutPrefix(line, "out_time_ms="); ok {
			if us, err := strconv.ParseInt(v, 10, 64); err == nil && us >= 0 {
				report(float64(us) / 1e6)
			}
			continue
		}
		if v, ok := strings.CutPrefix(line, "out_time="); ok {
			if secs, ok := clockToSeconds(v); ok {
				report(secs)
			}
		}
	}
}

// clockToSeconds converts ffmpeg clock format (HH:MM:SS.micro) to seconds.
func clockToSeconds(clock string) (float64, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return 0, false
	}

	hours, err1 := strconv.ParseFloat(parts[0], 64)
	minutes, err2 := strconv.ParseFloat(parts[1], 64)
	seconds, err3 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}

	return hours*3600 + minutes*60 + seconds, true
}
