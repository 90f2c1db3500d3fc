package video

import "fmt"

// EncodeError reports a failure surfaced by ffmpeg or ffprobe. Detail carries
// the captured tool output when available.
type EncodeError struct {
	Stage  string // "probe", "encode", "concat"
	Detail string
	Err    error
}

func (e *EncodeError) Error() string {
	msg := fmt.Sprintf("%s failed", e.Stage)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Detail != "" {
		msg += "\n" + e.Detail
	}
	return msg
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
