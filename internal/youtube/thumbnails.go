package youtube

import "fmt"

// Thumbnail is one of the fixed-size images YouTube hosts for every video.
type Thumbnail struct {
	URL        string `json:"url"`
	Resolution string `json:"resolution"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

var thumbnailVariants = []struct {
	name          string
	width, height int
}{
	{"maxresdefault", 1280, 720},
	{"sddefault", 640, 480},
	{"hqdefault", 480, 360},
	{"mqdefault", 320, 180},
}

// ThumbnailURLs lists the standard img.youtube.com variants for a video,
// largest first. The URLs are deterministic; whether maxresdefault actually
// exists depends on the upload.
func ThumbnailURLs(videoID string) []Thumbnail {
	out := make([]Thumbnail, 0, len(thumbnailVariants))
	for _, v := range thumbnailVariants {
		out = append(out, Thumbnail{
			URL:        fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", videoID, v.name),
			Resolution: fmt.Sprintf("%dx%d", v.width, v.height),
			Width:      v.width,
			Height:     v.height,
		})
	}
	return out
}
