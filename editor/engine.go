package editor

import (
	"context"

	"github.com/user/mp4edit-cli/video"
)

// Clip is the engine-side handle an operation works with. The production
// implementation is backed by package video; tests use a fake.
type Clip interface {
	Duration() float64
	SubClip(start, end float64) Clip
	Write(ctx context.Context, outPath string, opts video.Options, progress video.ProgressFunc) error
	Close() error
}

// Engine opens clips and joins them end-to-end.
type Engine interface {
	Open(path string) (Clip, error)
	Concatenate(clips ...Clip) Clip
}

// FFmpegEngine is the production engine backed by ffmpeg/ffprobe.
type FFmpegEngine struct{}

type ffmpegClip struct {
	*video.Clip
}

func (c ffmpegClip) SubClip(start, end float64) Clip {
	return ffmpegClip{c.Clip.SubClip(start, end)}
}

func (FFmpegEngine) Open(path string) (Clip, error) {
	clip, err := video.Open(path)
	if err != nil {
		return nil, err
	}
	return ffmpegClip{clip}, nil
}

func (FFmpegEngine) Concatenate(clips ...Clip) Clip {
	raw := make([]*video.Clip, 0, len(clips))
	for _, c := range clips {
		if fc, ok := c.(ffmpegClip); ok {
			raw = append(raw, fc.Clip)
		}
	}
	return ffmpegClip{video.Concatenate(raw...)}
}
