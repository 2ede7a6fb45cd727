package sos

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safenotes/safenotes/internal/client/models"
	"github.com/safenotes/safenotes/internal/common"
)

func TestSelection_CapsAtFiveItems(t *testing.T) {
	var s Selection
	for i := 0; i < MaxSelection; i++ {
		require.NoError(t, s.Add(models.EvidenceItem{ID: fmt.Sprintf("i%d", i), Kind: models.MediaKindImage}))
	}

	err := s.Add(models.EvidenceItem{ID: "extra", Kind: models.MediaKindImage})
	assert.ErrorIs(t, err, common.ErrSelectionFull)
	assert.Equal(t, MaxSelection, s.Len())
}

func TestSelection_SingleVideo(t *testing.T) {
	var s Selection
	require.NoError(t, s.Add(models.EvidenceItem{ID: "v1", Kind: models.MediaKindVideo}))

	err := s.Add(models.EvidenceItem{ID: "v2", Kind: models.MediaKindVideo})
	assert.ErrorIs(t, err, common.ErrVideoAlreadySelected)

	// audio and images are still fine alongside the video
	assert.NoError(t, s.Add(models.EvidenceItem{ID: "a1", Kind: models.MediaKindAudio}))
	assert.NoError(t, s.Add(models.EvidenceItem{ID: "i1", Kind: models.MediaKindImage}))
}

func TestSelection_RemoveFreesVideoSlot(t *testing.T) {
	var s Selection
	require.NoError(t, s.Add(models.EvidenceItem{ID: "v1", Kind: models.MediaKindVideo}))
	s.Remove("v1")

	assert.NoError(t, s.Add(models.EvidenceItem{ID: "v2", Kind: models.MediaKindVideo}))
	assert.Equal(t, 1, s.Len())
}

func TestSelection_AddTwiceIsNoOp(t *testing.T) {
	var s Selection
	item := models.EvidenceItem{ID: "v1", Kind: models.MediaKindVideo}
	require.NoError(t, s.Add(item))
	require.NoError(t, s.Add(item))
	assert.Equal(t, 1, s.Len())
}

func TestSMSURI(t *testing.T) {
	uri := SMSURI("91234567", "Help me\n\n[location unavailable]")
	assert.Equal(t, "sms:91234567?body=Help%20me%0A%0A%5Blocation%20unavailable%5D", uri)
}
