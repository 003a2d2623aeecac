package youtube

import (
	"errors"
	"regexp"
	"strings"
)

// IdentifierKind discriminates the forms a user-supplied YouTube
// reference can take.
type IdentifierKind int

const (
	KindVideoID IdentifierKind = iota
	KindChannelID
	KindHandle
	KindCustomName
	KindUserName
)

// Identifier is a canonical video/channel reference parsed from a raw URL
// or bare ID. Constructed once per request; invalid input never produces one.
type Identifier struct {
	Kind  IdentifierKind
	Value string
}

// ErrUnrecognizedIdentifier is returned when the input matches none of the
// known YouTube URL or ID forms.
var ErrUnrecognizedIdentifier = errors.New("unrecognized YouTube URL or identifier")

var (
	bareVideoIDRe   = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	bareChannelIDRe = regexp.MustCompile(`^UC[\w-]{22}$`)

	// Video URL forms, tried before channel forms.
	videoURLRes = []*regexp.Regexp{
		regexp.MustCompile(`youtube\.com/watch\?v=([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/v/([A-Za-z0-9_-]{11})`),
	}

	channelURLRe = regexp.MustCompile(`youtube\.com/channel/(UC[\w-]{22})`)
	handleURLRe  = regexp.MustCompile(`youtube\.com/@([\w.-]+)`)
	customURLRe  = regexp.MustCompile(`youtube\.com/c/([\w.-]+)`)
	userURLRe    = regexp.MustCompile(`youtube\.com/user/([\w.-]+)`)
)

// Parse extracts a canonical identifier from a raw URL string or bare ID.
// The only normalization applied is whitespace trimming and prefixing
// https:// when no scheme is given.
func Parse(raw string) (Identifier, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Identifier{}, ErrUnrecognizedIdentifier
	}

	if bareVideoIDRe.MatchString(s) {
		return Identifier{Kind: KindVideoID, Value: s}, nil
	}
	if bareChannelIDRe.MatchString(s) {
		return Identifier{Kind: KindChannelID, Value: s}, nil
	}

	if !strings.HasPrefix(s, "http") {
		s = "https://" + s
	}

	for _, re := range videoURLRes {
		if m := re.FindStringSubmatch(s); m != nil {
			return Identifier{Kind: KindVideoID, Value: m[1]}, nil
		}
	}
	if m := channelURLRe.FindStringSubmatch(s); m != nil {
		return Identifier{Kind: KindChannelID, Value: m[1]}, nil
	}
	if m := handleURLRe.FindStringSubmatch(s); m != nil {
		return Identifier{Kind: KindHandle, Value: m[1]}, nil
	}
	if m := customURLRe.FindStringSubmatch(s); m != nil {
		return Identifier{Kind: KindCustomName, Value: m[1]}, nil
	}
	if m := userURLRe.FindStringSubmatch(s); m != nil {
		return Identifier{Kind: KindUserName, Value: m[1]}, nil
	}

	return Identifier{}, ErrUnrecognizedIdentifier
}

// TargetURL builds the public YouTube page URL for the identifier.
func (id Identifier) TargetURL() string {
	switch id.Kind {
	case KindVideoID:
		return "https://www.youtube.com/watch?v=" + id.Value
	case KindChannelID:
		return "https://www.youtube.com/channel/" + id.Value
	case KindHandle:
		return "https://www.youtube.com/@" + id.Value
	case KindCustomName:
		return "https://www.youtube.com/c/" + id.Value
	case KindUserName:
		return "https://www.youtube.com/user/" + id.Value
	}
	return ""
}

// IsChannel reports whether the identifier refers to a channel page
// (anything that isn't a single video).
func (id Identifier) IsChannel() bool {
	return id.Kind != KindVideoID
}
