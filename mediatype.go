package sdpscan

import "github.com/pkg/errors"

// MediaType is the <media> token of an m= line.
type MediaType int

const (
	// MediaTypeAudio indicates an audio stream.
	MediaTypeAudio MediaType = iota + 1

	// MediaTypeVideo indicates a video stream.
	MediaTypeVideo

	// MediaTypeText indicates a timed text stream.
	MediaTypeText

	// MediaTypeApplication indicates an application stream, such as a
	// data channel.
	MediaTypeApplication
)

// Set according to currently registered with IANA
// https://tools.ietf.org/html/rfc4566#section-5.14
const (
	mediaTypeAudioStr       = "audio"
	mediaTypeVideoStr       = "video"
	mediaTypeTextStr        = "text"
	mediaTypeApplicationStr = "application"
)

// NewMediaType converts a raw media token into a MediaType.
func NewMediaType(raw string) (MediaType, error) {
	switch raw {
	case mediaTypeAudioStr:
		return MediaTypeAudio, nil
	case mediaTypeVideoStr:
		return MediaTypeVideo, nil
	case mediaTypeTextStr:
		return MediaTypeText, nil
	case mediaTypeApplicationStr:
		return MediaTypeApplication, nil
	default:
		return MediaType(Unknown), errors.Wrapf(ErrInvalidMedia, "media type `%s`", raw)
	}
}

func (t MediaType) String() string {
	switch t {
	case MediaTypeAudio:
		return mediaTypeAudioStr
	case MediaTypeVideo:
		return mediaTypeVideoStr
	case MediaTypeText:
		return mediaTypeTextStr
	case MediaTypeApplication:
		return mediaTypeApplicationStr
	default:
		return unknownStr
	}
}
