package searchview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThumbnail(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":             "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s":       "dQw4w9WgXcQ",
		"https://m.youtube.com/watch?feature=share&v=dQw4w9WgXcQ": "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ":                            "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?si=abc":                     "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":               "dQw4w9WgXcQ",
		"https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ":      "dQw4w9WgXcQ",
		"https://www.youtube.com/v/dQw4w9WgXcQ":                   "dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ":              "dQw4w9WgXcQ",
		"youtube.com/watch?v=dQw4w9WgXcQ":                         "dQw4w9WgXcQ",
		"http://music.youtube.com/watch?v=dQw4w9WgXcQ":            "dQw4w9WgXcQ",
	}

	for link, id := range cases {
		got, ok := VideoID(link)
		require.True(t, ok, link)
		require.Equal(t, id, got, link)

		thumb, ok := Thumbnail(link)
		require.True(t, ok, link)
		require.Equal(t, "https://img.youtube.com/vi/"+id+"/hqdefault.jpg", thumb, link)
	}
}

func TestThumbnailRejectsOtherLinks(t *testing.T) {
	for _, link := range []string{
		"",
		"https://example.com/video/123",
		"https://vimeo.com/76979871",
		"https://www.youtube.com/watch?v=short",
		"https://www.youtube.com/",
		"https://notyoutube.com/watch?v=dQw4w9WgXcQ",
		"https://example.com/?next=youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/@chan/videos/abcdefghijk",
		"https://youtube.com.evil.example/watch?v=dQw4w9WgXcQ",
		"https://example.com/youtu.be/dQw4w9WgXcQ",
		"ftp://youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXc!",
	} {
		thumb, ok := Thumbnail(link)
		require.False(t, ok, link)
		require.Empty(t, thumb, link)
	}
}

func TestUrlResultThumbnail(t *testing.T) {
	thumb, ok := UrlResult{URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}.Thumbnail()
	require.True(t, ok)
	require.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", thumb)
}
