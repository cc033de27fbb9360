package arts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomDogArt(t *testing.T) {
	assert.Equal(t, len(dogArts), DogArtCount())

	for i := 0; i < 20; i++ {
		assert.Contains(t, dogArts, RandomDogArt())
	}
}

func TestThinkingFrames(t *testing.T) {
	assert.NotEmpty(t, ThinkingFrames)

	for _, frame := range ThinkingFrames {
		assert.NotEmpty(t, frame)
	}
}
