package searchview

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// videoIDRegexp is the shape of a YouTube video id.
var videoIDRegexp = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// youtubePathPrefixes are the path forms that carry the id as their next segment.
var youtubePathPrefixes = []string{"/embed/", "/e/", "/v/", "/shorts/"}

const thumbnailURLTemplate = "https://img.youtube.com/vi/%s/hqdefault.jpg"

// VideoID extracts the YouTube video id of link.
//
// Recognized are watch, embed, /v/ and shorts links on youtube.com or
// youtube-nocookie.com (any subdomain) and youtu.be short links.
func VideoID(link string) (string, bool) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", false
	}
	if !strings.Contains(link, "://") {
		link = "https://" + link
	}

	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", false
	}

	var id string
	host := strings.ToLower(u.Hostname())
	switch {
	case host == "youtu.be" || host == "www.youtu.be":
		id, _, _ = strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	case isYouTubeHost(host):
		id = youtubePathID(u)
	default:
		return "", false
	}

	if !videoIDRegexp.MatchString(id) {
		return "", false
	}
	return id, true
}

// isYouTubeHost reports whether host is youtube.com or youtube-nocookie.com, or a subdomain of them
func isYouTubeHost(host string) bool {
	for _, domain := range []string{"youtube.com", "youtube-nocookie.com"} {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// youtubePathID returns the id candidate of a youtube.com url, empty when there is none
func youtubePathID(u *url.URL) string {
	if u.Path == "/watch" || u.Path == "/watch/" {
		return u.Query().Get("v")
	}

	for _, prefix := range youtubePathPrefixes {
		if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
			id, _, _ := strings.Cut(rest, "/")
			return id
		}
	}
	return ""
}

// Thumbnail returns the preview image url of link, false for non YouTube links.
func Thumbnail(link string) (string, bool) {
	id, ok := VideoID(link)
	if !ok {
		return "", false
	}
	return fmt.Sprintf(thumbnailURLTemplate, id), true
}
