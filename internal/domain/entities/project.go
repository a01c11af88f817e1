package entities

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidReviewTimestamp = errors.New("invalid review timestamp")

// Project groups the quotes and deliverables of one client production.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (name_key-index): name_key (lower-cased name, names are unique ignoring case)
//
// Links and deliverables are stored inline in the project item; updates replace the
// whole item (last writer wins).
type Project struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	QuoteCount   int           `json:"quote_count"`
	Links        []Link        `json:"links"`
	Deliverables []Deliverable `json:"deliverables"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// NameKey is the case-insensitive lookup key of a project name.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Link is a reference URL attached to a project (brief material, moodboards...).
type Link struct {
	ID      string    `json:"id" dynamodbav:"id"`
	Title   string    `json:"title" dynamodbav:"title"`
	URL     string    `json:"url" dynamodbav:"url"`
	AddedAt time.Time `json:"added_at" dynamodbav:"added_at"`
}

type DeliverableType string

const (
	DeliverableTypeFile DeliverableType = "file"
	DeliverableTypeLink DeliverableType = "link"
)

// Deliverable is a piece of work handed to the client for review.
type Deliverable struct {
	ID          string          `json:"id" dynamodbav:"id"`
	Title       string          `json:"title" dynamodbav:"title"`
	Type        DeliverableType `json:"type" dynamodbav:"type"`
	URL         string          `json:"url,omitempty" dynamodbav:"url,omitempty"`
	Filename    string          `json:"filename,omitempty" dynamodbav:"filename,omitempty"`
	ObjectKey   string          `json:"object_key,omitempty" dynamodbav:"object_key,omitempty"`
	ContentType string          `json:"content_type,omitempty" dynamodbav:"content_type,omitempty"`
	FileSize    int64           `json:"file_size,omitempty" dynamodbav:"file_size,omitempty"`
	Notes       string          `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
	Approved    bool            `json:"approved" dynamodbav:"approved"`
	Comments    []Comment       `json:"comments,omitempty" dynamodbav:"comments,omitempty"`
	AddedAt     time.Time       `json:"added_at" dynamodbav:"added_at"`
}

// Comment is a review note pinned to a playback position of a deliverable.
type Comment struct {
	ID        string    `json:"id" dynamodbav:"id"`
	Timestamp float64   `json:"timestamp" dynamodbav:"timestamp"`
	Text      string    `json:"text" dynamodbav:"text"`
	AddedAt   time.Time `json:"added_at" dynamodbav:"added_at"`
}

// MediaKind classifies a deliverable for playback.
type MediaKind string

const (
	MediaKindAudio     MediaKind = "audio"
	MediaKindVideo     MediaKind = "video"
	MediaKindImage     MediaKind = "image"
	MediaKindDocument  MediaKind = "document"
	MediaKindVideoLink MediaKind = "video_link"
	MediaKindLink      MediaKind = "link"
)

var (
	audioExt       = regexp.MustCompile(`(?i)\.(mp3|wav|ogg|m4a|aac|flac)$`)
	videoExt       = regexp.MustCompile(`(?i)\.(mp4|webm|mov|avi|mkv)$`)
	imageExt       = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp|svg)$`)
	dropboxVideoRe = regexp.MustCompile(`(?i)\.(mp4|mov|avi|webm|mkv)(\?|$)`)
)

func (d Deliverable) MediaKind() MediaKind {
	if d.Type == DeliverableTypeLink {
		u := d.URL
		switch {
		case strings.Contains(u, "drive.google.com/file/d/"),
			strings.Contains(u, "youtube.com"),
			strings.Contains(u, "youtu.be"),
			strings.Contains(u, "dropbox.com") && dropboxVideoRe.MatchString(u):
			return MediaKindVideoLink
		}
		return MediaKindLink
	}

	switch {
	case audioExt.MatchString(d.Filename):
		return MediaKindAudio
	case videoExt.MatchString(d.Filename):
		return MediaKindVideo
	case imageExt.MatchString(d.Filename):
		return MediaKindImage
	default:
		return MediaKindDocument
	}
}

// ParseReviewTimestamp parses a manually typed "M:SS" / "MM:SS" playback position
// into seconds. Unlike quote durations this is strict: seconds must be below 60.
func ParseReviewTimestamp(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: expected M:SS, got %q", ErrInvalidReviewTimestamp, s)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("%w: bad minutes in %q", ErrInvalidReviewTimestamp, s)
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || seconds < 0 {
		return 0, fmt.Errorf("%w: bad seconds in %q", ErrInvalidReviewTimestamp, s)
	}
	if seconds >= 60 {
		return 0, fmt.Errorf("%w: seconds must be below 60", ErrInvalidReviewTimestamp)
	}
	return minutes*60 + seconds, nil
}

// FormatReviewTimestamp renders seconds as MM:SS.
func FormatReviewTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// PlaybackURL returns a URL that media players can stream directly. Dropbox
// share links are rewritten to their raw-content host; other URLs are returned
// unchanged.
func (d Deliverable) PlaybackURL() string {
	u := d.URL
	if d.Type != DeliverableTypeLink || !strings.Contains(u, "dropbox.com") {
		return u
	}
	if !dropboxVideoRe.MatchString(u) && !strings.Contains(u, "/s/") && !strings.Contains(u, "/scl/") {
		return u
	}

	if strings.Contains(u, "/scl/") {
		parsed, err := url.Parse(u)
		if err != nil {
			return u
		}
		rlkey := parsed.Query().Get("rlkey")
		parsed.Host = "dl.dropboxusercontent.com"
		parsed.RawQuery = ""
		q := url.Values{}
		if rlkey != "" {
			q.Set("rlkey", rlkey)
		}
		q.Set("raw", "1")
		parsed.RawQuery = q.Encode()
		return parsed.String()
	}

	u = strings.Replace(u, "www.dropbox.com/s/", "dl.dropboxusercontent.com/s/", 1)
	if !strings.Contains(u, "dl.dropbox") {
		u = strings.Replace(u, "dropbox.com/s/", "dl.dropboxusercontent.com/s/", 1)
	}
	u = strings.Replace(u, "dl=0", "raw=1", 1)
	u = strings.Replace(u, "dl=1", "raw=1", 1)
	if !strings.Contains(u, "raw=") {
		if strings.Contains(u, "?") {
			u += "&raw=1"
		} else {
			u += "?raw=1"
		}
	}
	return u
}
