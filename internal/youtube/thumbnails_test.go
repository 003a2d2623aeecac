package youtube

import "testing"

func TestThumbnailURLs(t *testing.T) {
	thumbs := ThumbnailURLs("dQw4w9WgXcQ")

	if len(thumbs) != 4 {
		t.Fatalf("got %d variants, want 4", len(thumbs))
	}
	if thumbs[0].URL != "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg" {
		t.Errorf("unexpected first URL: %s", thumbs[0].URL)
	}
	if thumbs[0].Width != 1280 || thumbs[0].Height != 720 {
		t.Errorf("unexpected max resolution: %dx%d", thumbs[0].Width, thumbs[0].Height)
	}
	// Largest first
	for i := 1; i < len(thumbs); i++ {
		if thumbs[i].Width >= thumbs[i-1].Width {
			t.Errorf("variants not ordered largest first at index %d", i)
		}
	}
}
