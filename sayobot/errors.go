package sayobot

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyParameters     = errors.New("url params is empty")
	ErrSidNotSet           = errors.New("sid not set")
	ErrResourceTypeNotSet  = errors.New("resource type not set")
	ErrPathNotExist        = errors.New("path not exist")
	ErrUnsupportedResource = errors.New("resource type not supported")
	ErrBeatmapNotFound     = errors.New("beatmap not found")
	ErrNoFilename          = errors.New("can't get file name from response header")
	ErrMalformedResponse   = errors.New("malformed response")
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("[sayobot] %s %s: http status not success %s", e.Method, e.URL, e.Status)
}
