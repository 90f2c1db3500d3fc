package video

import "fmt"

// Options selects the re-encode profile for the write phase.
type Options struct {
	VideoCodec string
	AudioCodec string
	Preset     string
}

// DefaultOptions is the fixed profile used when no flags override it.
var DefaultOptions = Options{
	VideoCodec: "libx264",
	AudioCodec: "aac",
	Preset:     "fast",
}

func (o Options) withDefaults() Options {
	if o.VideoCodec == "" {
		o.VideoCodec = DefaultOptions.VideoCodec
	}
	if o.AudioCodec == "" {
		o.AudioCodec = DefaultOptions.AudioCodec
	}
	if o.Preset == "" {
		o.Preset = DefaultOptions.Preset
	}
	return o
}

func probeArgs(sourcePath string) []string {
	return []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-show_format",
		sourcePath,
	}
}

// encodeArgs builds the ffmpeg invocation that re-encodes one segment.
// Progress key=value lines are requested on stdout.
func encodeArgs(seg Segment, outPath string, opts Options) []string {
	return []string{
		"-y",
		"-ss", fmt.Sprintf("%.3f", seg.Start),
		"-i", seg.Source,
		"-t", fmt.Sprintf("%.3f", seg.End-seg.Start),
		"-c:v", opts.VideoCodec,
		"-c:a", opts.AudioCodec,
		"-preset", opts.Preset,
		"-progress", "pipe:1",
		"-nostats",
		"-loglevel", "error",
		outPath,
	}
}

// concatArgs builds the ffmpeg concat-demuxer invocation that joins already
// encoded parts without re-encoding.
func concatArgs(listPath, outPath string) []string {
	return []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		"-loglevel", "error",
		outPath,
	}
}
