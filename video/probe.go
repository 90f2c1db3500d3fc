package video

import (
	"encoding/json"
	"os/exec"
	"strconv"
)

// Stream describes a single media stream reported by ffprobe.
type Stream struct {
	Index     int    `json:"index"`
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

// Format describes the container format reported by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
}

// ProbeResult holds the metadata extracted from a media file.
type ProbeResult struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Duration returns the container duration in seconds.
func (pr *ProbeResult) Duration() (float64, error) {
	if pr.Format.Duration == "" {
		return 0, &EncodeError{Stage: "probe", Detail: "duration not available in format metadata"}
	}
	duration, err := strconv.ParseFloat(pr.Format.Duration, 64)
	if err != nil {
		return 0, &EncodeError{Stage: "probe", Detail: "unparseable duration '" + pr.Format.Duration + "'", Err: err}
	}
	return duration, nil
}

// HasStream reports whether a stream of the given codec type ("video",
// "audio") is present.
func (pr *ProbeResult) HasStream(codecType string) bool {
	for _, s := range pr.Streams {
		if s.CodecType == codecType {
			return true
		}
	}
	return false
}

// Probe extracts stream and format metadata from a media file with ffprobe.
func Probe(sourcePath string) (*ProbeResult, error) {
	cmd := exec.Command("ffprobe", probeArgs(sourcePath)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, &EncodeError{Stage: "probe", Detail: string(output), Err: err}
	}

	var result ProbeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, &EncodeError{Stage: "probe", Detail: "unparseable ffprobe output", Err: err}
	}
	return &result, nil
}
