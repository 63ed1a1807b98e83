package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

// NewEbitenOpener returns an Opener that decodes MP3 and OGG Vorbis files
// from fsys into infinitely looping players on ctx.
func NewEbitenOpener(ctx *audio.Context, fsys fs.FS) Opener {
	return func(p string) (Stream, error) {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
		}
		reader := bytes.NewReader(data)

		var stream interface {
			io.ReadSeeker
			Length() int64
		}
		switch ext := strings.ToLower(path.Ext(p)); ext {
		case ".mp3":
			s, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), reader)
			if err != nil {
				return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", p, err)
			}
			stream = s
		case ".ogg":
			s, err := vorbis.DecodeWithSampleRate(ctx.SampleRate(), reader)
			if err != nil {
				return nil, fmt.Errorf("failed to decode OGG audio %s: %w", p, err)
			}
			stream = s
		default:
			return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
		}

		player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
		if err != nil {
			return nil, fmt.Errorf("failed to create audio player for %s: %w", p, err)
		}
		return player, nil
	}
}
