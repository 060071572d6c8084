// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strings"
	"testing"

	"github.com/pdiddy/quickcite/internal/authors"
	"github.com/pdiddy/quickcite/pkg/types"
)

func surveyRecord() types.CaptureRecord {
	return types.CaptureRecord{
		Text:         "x",
		SourceTitle:  "Deep Learning Survey",
		SourceURL:    "https://arxiv.org/abs/2301.00001",
		Author:       "Jane Doe and John Roe",
		CreationDate: "2023-01-15",
		AccessDate:   "March 1, 2024",
		Volume:       "5",
		Issue:        "2",
		Pages:        "10-20",
		DOI:          "10.1234/abc",
	}
}

func blogRecord() types.CaptureRecord {
	return types.CaptureRecord{
		Text:         "Goroutines are cheap.",
		SourceTitle:  "How Go Schedules Goroutines | Go Blog",
		SourceURL:    "https://go.dev/blog/sched",
		Author:       "Rob Pike",
		CreationDate: "2023-05-10",
		AccessDate:   "March 1, 2024",
	}
}

func TestRenderAcademic(t *testing.T) {
	r := surveyRecord()
	tests := []struct {
		style types.Style
		want  string
	}{
		{types.StyleMLA, `Doe, Jane, and John Roe. "Deep Learning Survey." <em>arXiv</em>, vol. 5, no. 2, pp. 10-20, 15 Jan. 2023, https://doi.org/10.1234/abc. Accessed 1 Mar. 2024.`},
		{types.StyleAPA, `Doe, Jane, &amp; John Roe (2023). Deep learning survey. <em>arXiv</em>, <em>5</em>(2), 10-20. https://doi.org/10.1234/abc`},
		{types.StyleChicago, `Doe, Jane, and John Roe. "Deep Learning Survey." <em>arXiv</em> 5, no. 2 (2023): 10-20. https://doi.org/10.1234/abc.`},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			if got := Render(r, tt.style); got != tt.want {
				t.Errorf("Render(%s)\n got: %s\nwant: %s", tt.style, got, tt.want)
			}
		})
	}
}

func TestRenderWebPage(t *testing.T) {
	r := blogRecord()
	tests := []struct {
		style types.Style
		want  string
	}{
		{types.StyleMLA, `Pike, Rob. "How Go Schedules Goroutines." <em>Go Blog</em>, 10 May 2023, go.dev/blog/sched. Accessed 1 Mar. 2024.`},
		{types.StyleAPA, `Pike, Rob (2023, May 10). <em>How go schedules goroutines</em>. Go Blog. https://go.dev/blog/sched`},
		{types.StyleChicago, `Pike, Rob. "How Go Schedules Goroutines." Go Blog. May 10, 2023. https://go.dev/blog/sched.`},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			if got := Render(r, tt.style); got != tt.want {
				t.Errorf("Render(%s)\n got: %s\nwant: %s", tt.style, got, tt.want)
			}
		})
	}
}

func TestRenderNoAuthorGovernment(t *testing.T) {
	r := types.CaptureRecord{
		Text:        "x",
		SourceTitle: "Official Statement | EPA",
		SourceURL:   "https://www.epa.gov/statement",
	}

	apa := Render(r, types.StyleAPA)
	if !strings.HasPrefix(apa, "Unknown Author (") {
		t.Errorf("APA = %q, want prefix %q", apa, "Unknown Author (")
	}
	if !strings.Contains(apa, "EPA") {
		t.Errorf("APA = %q, want container EPA", apa)
	}

	if mla := Render(r, types.StyleMLA); !strings.HasPrefix(mla, "Unknown Author.") {
		t.Errorf("MLA = %q, want Unknown Author first", mla)
	}

	chicago := Render(r, types.StyleChicago)
	if !strings.HasPrefix(chicago, `"Official Statement."`) {
		t.Errorf("Chicago = %q, want to start with the quoted title", chicago)
	}
	if strings.Contains(chicago, types.UnknownAuthor) {
		t.Errorf("Chicago = %q, must omit the author clause", chicago)
	}
}

func TestRenderLastFirstNotReinverted(t *testing.T) {
	r := blogRecord()
	r.Author = "Smith, John"
	if got := Render(r, types.StyleMLA); !strings.HasPrefix(got, "Smith, John. ") {
		t.Errorf("MLA = %q, want prefix %q", got, "Smith, John. ")
	}
}

func TestRenderEtAl(t *testing.T) {
	r := blogRecord()
	r.Author = "Ann Lee, Bo Park, Cy Diaz, Di Wu"
	if info := authors.Parse(r.Author); info.Count < 3 {
		t.Fatalf("Count = %d, want >= 3", info.Count)
	}

	for _, style := range types.AllStyles {
		got := Render(r, style)
		if !strings.HasPrefix(got, "Lee, Ann, et al.") {
			t.Errorf("%s = %q, want first author inverted then et al.", style, got)
		}
		for _, other := range []string{"Park", "Diaz", "Wu"} {
			if strings.Contains(got, other) {
				t.Errorf("%s = %q, must not name %s", style, got, other)
			}
		}
	}
}

func TestRenderCorporateNotInverted(t *testing.T) {
	r := blogRecord()
	r.Author = "World Health Organization"
	for _, style := range types.AllStyles {
		if got := Render(r, style); !strings.HasPrefix(got, "World Health Organization") {
			t.Errorf("%s = %q, want corporate name as given", style, got)
		}
	}
}

func TestMLAAlwaysEndsWithAccessed(t *testing.T) {
	r := types.CaptureRecord{
		Text:        "x",
		SourceTitle: "Some Title",
		SourceURL:   "https://example.com/page",
		AccessDate:  "March 1, 2024",
	}
	for _, st := range types.AllSourceTypes {
		got := RenderSource(NewSource(r, st), types.StyleMLA)
		if !strings.HasSuffix(got, "Accessed 1 Mar. 2024.") {
			t.Errorf("%s: MLA = %q, want Accessed suffix", st, got)
		}
	}

	r.AccessDate = ""
	r.Timestamp = "2024-03-02T09:00:00Z"
	if got := Render(r, types.StyleMLA); !strings.HasSuffix(got, "Accessed 2 Mar. 2024.") {
		t.Errorf("MLA = %q, want Accessed from timestamp", got)
	}
}

func TestMLAAccessedWithoutCaptureDate(t *testing.T) {
	r := types.CaptureRecord{
		Text:        "x",
		SourceTitle: "Mid",
		SourceURL:   "https://c.com",
	}
	for _, st := range types.AllSourceTypes {
		got := RenderSource(NewSource(r, st), types.StyleMLA)
		if !strings.HasSuffix(got, " Accessed n.d.") || strings.HasSuffix(got, "..") {
			t.Errorf("%s: MLA = %q, want single-period Accessed n.d.", st, got)
		}
	}

	r.AccessDate = "sometime in spring."
	got := Render(r, types.StyleMLA)
	if !strings.HasSuffix(got, "Accessed sometime in spring.") {
		t.Errorf("MLA = %q, want verbatim access date without doubled period", got)
	}

	r.AccessDate = ""
	got = Render(r, types.StyleChicago)
	if strings.Contains(got, "..") {
		t.Errorf("Chicago = %q, has doubled period", got)
	}
}

func TestRenderNeverEmpty(t *testing.T) {
	var empty types.CaptureRecord
	for _, st := range types.AllSourceTypes {
		for _, style := range types.AllStyles {
			if got := RenderSource(NewSource(empty, st), style); strings.TrimSpace(got) == "" {
				t.Errorf("%s/%s: empty citation", st, style)
			}
		}
	}
	if got := RenderSource(NewSource(empty, types.SourceWebsite), types.StyleChicago); got != "Unknown Author." {
		t.Errorf("Chicago = %q, want %q", got, "Unknown Author.")
	}
}

func TestAPANoTrailingPeriod(t *testing.T) {
	r := types.CaptureRecord{
		Text:         "x",
		SourceTitle:  "Some Title",
		SourceURL:    "https://example.com/page",
		Author:       "Jane Doe",
		CreationDate: "2020-02-02",
	}
	for _, st := range types.AllSourceTypes {
		got := RenderSource(NewSource(r, st), types.StyleAPA)
		if !strings.HasSuffix(got, "https://example.com/page") {
			t.Errorf("%s: APA = %q, want to end with the URL", st, got)
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	for _, r := range []types.CaptureRecord{surveyRecord(), blogRecord()} {
		for _, style := range types.AllStyles {
			if a, b := Render(r, style), Render(r, style); a != b {
				t.Errorf("%s: renders differ:\n%s\n%s", style, a, b)
			}
		}
	}
}

func TestRenderNoPlaceholderLeaks(t *testing.T) {
	r := types.CaptureRecord{
		Text:         "x",
		SourceTitle:  "Deep Learning Survey",
		SourceURL:    "https://arxiv.org/abs/2301.00001",
		Author:       "undefined",
		CreationDate: "null",
		AccessDate:   "March 1, 2024",
		Volume:       "undefined",
		DOI:          "null",
	}
	for _, style := range types.AllStyles {
		got := Render(r, style)
		for _, bad := range []string{"undefined", "null", "vol.", ", ,", "()"} {
			if strings.Contains(got, bad) {
				t.Errorf("%s = %q, contains %q", style, got, bad)
			}
		}
	}
}

func TestAcademicFieldsOnlyForAcademic(t *testing.T) {
	r := blogRecord()
	r.Volume, r.Issue, r.Pages, r.DOI = "9", "3", "1-2", "10.9999/zzz"
	for _, style := range types.AllStyles {
		got := Render(r, style)
		for _, leak := range []string{"vol.", "no. 3", "10.9999"} {
			if strings.Contains(got, leak) {
				t.Errorf("%s = %q, website must not carry %q", style, got, leak)
			}
		}
	}
}

func TestChicagoPrefersDOI(t *testing.T) {
	got := Render(surveyRecord(), types.StyleChicago)
	if strings.Contains(got, "arxiv.org/abs") {
		t.Errorf("Chicago = %q, want DOI instead of URL", got)
	}
}

func TestChicagoAccessedWithoutDate(t *testing.T) {
	r := blogRecord()
	r.CreationDate = ""
	want := `Pike, Rob. "How Go Schedules Goroutines." Go Blog. Accessed March 1, 2024. https://go.dev/blog/sched.`
	if got := Render(r, types.StyleChicago); got != want {
		t.Errorf("Chicago\n got: %s\nwant: %s", got, want)
	}
}

func TestRenderVariants(t *testing.T) {
	tests := []struct {
		name   string
		record types.CaptureRecord
		style  types.Style
		want   string
	}{
		{
			name: "legal case apa",
			record: types.CaptureRecord{
				SourceTitle: "Brown v. Board of Education, 347 U.S. 483 (1954)",
				SourceURL:   "https://supreme.justia.com/cases/federal/us/347/483/",
			},
			style: types.StyleAPA,
			want:  "Unknown Author (n.d.). <em>Brown v. Board of Education</em>, 347 U.S. 483. https://supreme.justia.com/cases/federal/us/347/483/",
		},
		{
			name: "video mla",
			record: types.CaptureRecord{
				SourceTitle:     "Concurrency Is Not Parallelism",
				SourceURL:       "https://www.youtube.com/watch?v=oV9rvDllKEg",
				VideoChannel:    "Golang",
				VideoUploadDate: "2013-01-16",
				AccessDate:      "March 1, 2024",
			},
			style: types.StyleMLA,
			want:  `Unknown Author. "Concurrency Is Not Parallelism." <em>YouTube</em>, uploaded by Golang, 16 Jan. 2013, www.youtube.com/watch?v=oV9rvDllKEg. Accessed 1 Mar. 2024.`,
		},
		{
			name: "video apa label",
			record: types.CaptureRecord{
				SourceTitle:     "Concurrency Is Not Parallelism",
				SourceURL:       "https://www.youtube.com/watch?v=oV9rvDllKEg",
				Author:          "Rob Pike",
				VideoUploadDate: "2013-01-16",
			},
			style: types.StyleAPA,
			want:  "Pike, Rob (2013, January 16). <em>Concurrency is not parallelism</em> [Video]. YouTube. https://www.youtube.com/watch?v=oV9rvDllKEg",
		},
		{
			name: "standard chicago",
			record: types.CaptureRecord{
				SourceTitle:  "ISO 9001:2015 Quality management systems",
				SourceURL:    "https://www.iso.org/standard/62085.html",
				Author:       "International Organization for Standardization",
				CreationDate: "2015-09-15",
			},
			style: types.StyleChicago,
			want:  "International Organization for Standardization. <em>Quality management systems</em>. ISO, ISO 9001:2015. September 15, 2015. https://www.iso.org/standard/62085.html.",
		},
		{
			name: "book apa edition",
			record: types.CaptureRecord{
				SourceTitle:  "The Go Programming Language, 2nd Edition",
				SourceURL:    "https://books.google.com/books?id=abc",
				Author:       "Alan Donovan and Brian Kernighan",
				Publisher:    "Addison-Wesley",
				CreationDate: "2015",
			},
			style: types.StyleAPA,
			want:  "Donovan, Alan, &amp; Brian Kernighan (2015). <em>The go programming language</em> (2nd ed.). Addison-Wesley. https://books.google.com/books?id=abc",
		},
		{
			name: "social apa handle",
			record: types.CaptureRecord{
				SourceTitle:  "Shipping Go 1.22 today",
				SourceURL:    "https://x.com/golang/status/123",
				Author:       "Russ Cox",
				CreationDate: "2024-02-06",
			},
			style: types.StyleAPA,
			want:  "Cox, Russ [@golang] (2024, February 6). Shipping go 1.22 today [Post]. X. https://x.com/golang/status/123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.record, tt.style); got != tt.want {
				t.Errorf("Render\n got: %s\nwant: %s", got, tt.want)
			}
		})
	}
}

func TestNewSourceVariants(t *testing.T) {
	r := types.CaptureRecord{SourceTitle: "Anything", SourceURL: "https://example.com/a"}
	for _, st := range types.AllSourceTypes {
		src := NewSource(r, st)
		if src.Type() != st {
			t.Errorf("NewSource(%s).Type() = %s", st, src.Type())
		}
	}

	j, ok := NewSource(types.CaptureRecord{SourceURL: "https://doi.org/10.1234/xyz"}, types.SourceAcademic).(JournalArticle)
	if !ok {
		t.Fatal("academic source is not a JournalArticle")
	}
	if j.DOI != "10.1234/xyz" {
		t.Errorf("DOI from URL = %q", j.DOI)
	}
}

func TestEscapingAndPlain(t *testing.T) {
	r := blogRecord()
	r.SourceTitle = "Tom & Jerry <3 | Cartoons"
	mla := Render(r, types.StyleMLA)
	if !strings.Contains(mla, `"Tom &amp; Jerry &lt;3."`) {
		t.Errorf("MLA = %q, want escaped title", mla)
	}
	plain := Plain(mla)
	if !strings.Contains(plain, `"Tom & Jerry <3."`) || !strings.Contains(plain, "*Cartoons*") {
		t.Errorf("Plain = %q", plain)
	}
	if strings.Contains(plain, "<em>") {
		t.Errorf("Plain = %q, still has markers", plain)
	}
}

func TestRenderAll(t *testing.T) {
	all := RenderAll(surveyRecord())
	if len(all) != len(types.AllStyles) {
		t.Fatalf("RenderAll returned %d styles", len(all))
	}
	for style, got := range all {
		if got != Render(surveyRecord(), style) {
			t.Errorf("RenderAll[%s] differs from Render", style)
		}
	}
}
