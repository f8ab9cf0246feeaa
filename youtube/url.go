package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

// RefKind says how a ChannelRef identifies a channel.
type RefKind int

const (
	RefHandle RefKind = iota
	RefID
	RefUsername
)

// ChannelRef is a channel reference parsed from a URL.
type ChannelRef struct {
	Kind  RefKind
	Value string
}

func (r ChannelRef) String() string {
	switch r.Kind {
	case RefID:
		return "id:" + r.Value
	case RefUsername:
		return "user:" + r.Value
	default:
		return "@" + r.Value
	}
}

var (
	handleRe    = regexp.MustCompile(`^@([\w.\-]+)$`)
	segmentRe   = regexp.MustCompile(`^[\w.\-]+$`)
	channelIDRe = regexp.MustCompile(`^UC[\w\-]{22}$`)
)

// reservedSegments are youtube.com paths that never name a channel.
var reservedSegments = map[string]struct{}{
	"watch": {}, "shorts": {}, "playlist": {}, "results": {}, "feed": {},
	"embed": {}, "live": {}, "premium": {}, "gaming": {}, "music": {},
}

// ParseChannelURL extracts a channel reference from a YouTube channel URL.
// It understands /@handle, /channel/UC…, /c/name and /user/name paths and
// otherwise treats the last path segment as a handle.
func ParseChannelURL(raw string) (ChannelRef, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ChannelRef{}, ErrInvalidURL
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ChannelRef{}, ErrInvalidURL
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	if host != "youtube.com" {
		return ChannelRef{}, ErrInvalidURL
	}

	var segs []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return ChannelRef{}, ErrInvalidURL
	}

	if m := handleRe.FindStringSubmatch(segs[0]); m != nil {
		return ChannelRef{Kind: RefHandle, Value: m[1]}, nil
	}

	if len(segs) >= 2 {
		switch segs[0] {
		case "channel":
			if channelIDRe.MatchString(segs[1]) {
				return ChannelRef{Kind: RefID, Value: segs[1]}, nil
			}
			return ChannelRef{}, ErrInvalidURL
		case "user":
			if segmentRe.MatchString(segs[1]) {
				return ChannelRef{Kind: RefUsername, Value: segs[1]}, nil
			}
			return ChannelRef{}, ErrInvalidURL
		case "c":
			if segmentRe.MatchString(segs[1]) {
				return ChannelRef{Kind: RefHandle, Value: segs[1]}, nil
			}
			return ChannelRef{}, ErrInvalidURL
		}
	}

	last := segs[len(segs)-1]
	if m := handleRe.FindStringSubmatch(last); m != nil {
		return ChannelRef{Kind: RefHandle, Value: m[1]}, nil
	}
	if _, reserved := reservedSegments[strings.ToLower(segs[0])]; reserved {
		return ChannelRef{}, ErrInvalidURL
	}
	if !segmentRe.MatchString(last) {
		return ChannelRef{}, ErrInvalidURL
	}
	return ChannelRef{Kind: RefHandle, Value: last}, nil
}
