package view

import "regexp"

// Accepted shapes: youtube.com/watch?v=ID, youtu.be/ID and youtube.com/embed/ID.
var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`)

// ExtractVideoID pulls the video identifier out of a YouTube URL.
// The identifier ends at the first '&', newline, '?' or '#'.
func ExtractVideoID(rawURL string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(rawURL)
	if len(m) < 2 || m[1] == "" {
		return "", false
	}
	return m[1], true
}
