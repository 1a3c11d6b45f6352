package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.org/photos/a.jpg", PhotoURL("https://cdn.example.org/photos/", "a.jpg"))
	assert.Equal(t, "a.jpg", PhotoURL("", "a.jpg"))
}

func TestPhotoCaption(t *testing.T) {
	assert.Equal(t, "Photo 2 of sheet 6083 - b.jpg", PhotoCaption("6083", 1, "b.jpg"))
	assert.Equal(t, "Photo 1 of sheet 12 - front.jpg", PhotoCaption("12", 0, "front.jpg"))
}
