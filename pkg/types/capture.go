// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the quickcite pipeline.
// Implements: capture records, source types, author info and citation styles
// consumed by classify, authors, normalize, cite and bibliography.
package types

import "strings"

// SourceType tags a captured record with the kind of work it cites.
type SourceType string

const (
	SourceWebsite     SourceType = "website"
	SourceAcademic    SourceType = "academic"
	SourceBook        SourceType = "book"
	SourceNews        SourceType = "news"
	SourceGovernment  SourceType = "government"
	SourceLegal       SourceType = "legal"
	SourcePatent      SourceType = "patent"
	SourceStandard    SourceType = "standard"
	SourceVideo       SourceType = "video"
	SourceSocialMedia SourceType = "social_media"
)

// AllSourceTypes lists every SourceType in classifier priority order, with
// the default last.
var AllSourceTypes = []SourceType{
	SourceGovernment,
	SourceLegal,
	SourcePatent,
	SourceStandard,
	SourceVideo,
	SourceSocialMedia,
	SourceAcademic,
	SourceBook,
	SourceNews,
	SourceWebsite,
}

// Valid reports whether t is one of the defined source types.
func (t SourceType) Valid() bool {
	for _, known := range AllSourceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Style selects a citation style.
type Style string

const (
	StyleMLA     Style = "mla"
	StyleAPA     Style = "apa"
	StyleChicago Style = "chicago"
)

// AllStyles lists the supported citation styles.
var AllStyles = []Style{StyleMLA, StyleAPA, StyleChicago}

// ParseStyle maps a case-insensitive style name to a Style.
func ParseStyle(s string) (Style, bool) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleMLA:
		return StyleMLA, true
	case StyleAPA:
		return StyleAPA, true
	case StyleChicago:
		return StyleChicago, true
	}
	return "", false
}

// Label returns the display name of s ("MLA", "APA", "Chicago").
func (s Style) Label() string {
	switch s {
	case StyleMLA, StyleAPA:
		return strings.ToUpper(string(s))
	case StyleChicago:
		return "Chicago"
	}
	return string(s)
}

// UnknownAuthor is the sentinel printed when a record has no author.
const UnknownAuthor = "Unknown Author"

// CaptureRecord is one saved quotation with its provenance metadata.
// Text and SourceURL are always present; every other field is empty when
// the metadata collaborator could not determine it.
type CaptureRecord struct {
	// ID is a UUID assigned when the quote is captured.
	ID string `json:"id" yaml:"id"`

	// Text is the quoted passage, whitespace-trimmed.
	Text string `json:"text" yaml:"text"`

	// SourceTitle is the page title, possibly "Title | Container | by Author".
	SourceTitle string `json:"source_title" yaml:"source_title"`

	// SourceURL is the absolute URL of the page.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// Author is the free-text author string.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// SourceName is an authoritative container name (e.g. "arXiv").
	SourceName string `json:"source_name,omitempty" yaml:"source_name,omitempty"`

	// Timestamp is the ISO-8601 capture time.
	Timestamp string `json:"timestamp" yaml:"timestamp"`

	// AccessDate is the human-readable capture date (e.g. "March 1, 2024").
	AccessDate string `json:"access_date" yaml:"access_date"`

	// CreationDate is the source's own publication date when discoverable.
	CreationDate string `json:"creation_date,omitempty" yaml:"creation_date,omitempty"`

	Volume    string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue     string `json:"issue,omitempty" yaml:"issue,omitempty"`
	Pages     string `json:"pages,omitempty" yaml:"pages,omitempty"`
	DOI       string `json:"doi,omitempty" yaml:"doi,omitempty"`
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`

	// IsVideo forces the video source type.
	IsVideo         bool   `json:"is_video,omitempty" yaml:"is_video,omitempty"`
	VideoChannel    string `json:"video_channel,omitempty" yaml:"video_channel,omitempty"`
	VideoPlatform   string `json:"video_platform,omitempty" yaml:"video_platform,omitempty"`
	VideoUploadDate string `json:"video_upload_date,omitempty" yaml:"video_upload_date,omitempty"`

	// Tags are user labels. Stored but not interpreted by the core.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Normalize returns a copy with every string field trimmed and placeholder
// values ("undefined", "null") treated as absent.
func (r CaptureRecord) Normalize() CaptureRecord {
	for _, f := range []*string{
		&r.ID, &r.Text, &r.SourceTitle, &r.SourceURL, &r.Author, &r.SourceName,
		&r.Timestamp, &r.AccessDate, &r.CreationDate, &r.Volume, &r.Issue,
		&r.Pages, &r.DOI, &r.Publisher, &r.VideoChannel, &r.VideoPlatform,
		&r.VideoUploadDate,
	} {
		*f = clean(*f)
	}
	return r
}

func clean(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "undefined", "null":
		return ""
	}
	return s
}

// AuthorInfo is the structured form of a free-text author string.
// Count is len(Authors) except for corporate authors, where it is 1.
// Count 0 means no author.
type AuthorInfo struct {
	Authors     []string `json:"authors" yaml:"authors"`
	IsCorporate bool     `json:"is_corporate" yaml:"is_corporate"`
	Count       int      `json:"count" yaml:"count"`
}

// First returns the first author, or "" when there is none.
func (a AuthorInfo) First() string {
	if len(a.Authors) == 0 {
		return ""
	}
	return a.Authors[0]
}
