package note

import (
	"fmt"
)

const maxMediaLen = 100 * 1024 * 1024 // 100 MB

// AudioBody - тело аудиозаписи: сырые байты контейнера и длительность
// в целых секундах.
type AudioBody struct {
	Data     []byte `json:"-"`
	Duration int    `json:"duration"`
}

func (a *AudioBody) Kind() Kind {
	return KindAudio
}

func (a *AudioBody) Validate() error {
	if len(a.Data) == 0 {
		return fmt.Errorf("audio data is required")
	}

	if len(a.Data) > maxMediaLen {
		return fmt.Errorf("audio payload too large (max 100MB)")
	}

	if a.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}

	return nil
}

func (a *AudioBody) Payload() []byte {
	return a.Data
}

// VideoBody - тело видеозаписи. Миниатюра необязательна и не попадает
// в теневую метазапись при экспорте.
type VideoBody struct {
	Data      []byte `json:"-"`
	Duration  int    `json:"duration"`
	Thumbnail []byte `json:"-"`
}

func (v *VideoBody) Kind() Kind {
	return KindVideo
}

func (v *VideoBody) Validate() error {
	if len(v.Data) == 0 {
		return fmt.Errorf("video data is required")
	}

	if len(v.Data) > maxMediaLen {
		return fmt.Errorf("video payload too large (max 100MB)")
	}

	if v.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}

	return nil
}

func (v *VideoBody) Payload() []byte {
	return v.Data
}
