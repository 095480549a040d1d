package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindValidate(t *testing.T) {
	assert.NoError(t, KindText.Validate())
	assert.NoError(t, KindAudio.Validate())
	assert.NoError(t, KindVideo.Validate())

	assert.Error(t, Kind("").Validate())
	assert.Error(t, Kind("photo").Validate())
}

func TestKindSubfolder(t *testing.T) {
	assert.Equal(t, "Text", KindText.Subfolder())
	assert.Equal(t, "Audio", KindAudio.Subfolder())
	assert.Equal(t, "Video", KindVideo.Subfolder())
}

func TestKindExtension(t *testing.T) {
	assert.Equal(t, ".txt", KindText.Extension())
	assert.Equal(t, ".ogg", KindAudio.Extension())
	assert.Equal(t, ".webm", KindVideo.Extension())
}
