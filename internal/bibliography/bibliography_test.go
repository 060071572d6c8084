// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibliography

import (
	"bytes"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/quickcite/internal/cite"
	"github.com/pdiddy/quickcite/pkg/types"
)

func surveyRecord() types.CaptureRecord {
	return types.CaptureRecord{
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
		SourceTitle:  "How Go Schedules Goroutines | Go Blog",
		SourceURL:    "https://go.dev/blog/sched",
		Author:       "Rob Pike",
		CreationDate: "2023-05-10",
		AccessDate:   "March 1, 2024",
	}
}

func withAuthor(r types.CaptureRecord, author string) types.CaptureRecord {
	r.Author = author
	return r
}

func TestSortKey(t *testing.T) {
	tests := []struct {
		author string
		want   string
	}{
		{"Doe, Jane", "Doe"},
		{"Jane Doe", "Doe"},
		{"Plato", "Plato"},
		{"Jane Doe and John Roe", "Roe"},
		{"", "Author"},
		{"   ", "Author"},
	}
	for _, tt := range tests {
		if got := SortKey(tt.author); got != tt.want {
			t.Errorf("SortKey(%q) = %q, want %q", tt.author, got, tt.want)
		}
	}
}

func TestEntriesSorted(t *testing.T) {
	records := []types.CaptureRecord{
		withAuthor(blogRecord(), "Rob Pike"),
		withAuthor(blogRecord(), "jane adams"),
		withAuthor(blogRecord(), ""),
		withAuthor(blogRecord(), "Doe, John"),
	}
	entries := Entries(records, types.StyleMLA)

	var got []string
	for _, e := range entries {
		got = append(got, e.Key)
	}
	want := []string{"adams", "Author", "Doe", "Pike"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func TestEntriesStableOnTies(t *testing.T) {
	first := withAuthor(blogRecord(), "Ann Smith")
	first.SourceTitle = "First Post | Blog"
	second := withAuthor(blogRecord(), "Bob Smith")
	second.SourceTitle = "Second Post | Blog"

	entries := Entries([]types.CaptureRecord{first, second}, types.StyleMLA)
	if !strings.Contains(entries[0].Citation, "First Post") {
		t.Errorf("tie order not preserved: %q first", entries[0].Citation)
	}

	entries = Entries([]types.CaptureRecord{second, first}, types.StyleMLA)
	if !strings.Contains(entries[0].Citation, "Second Post") {
		t.Errorf("tie order not preserved: %q first", entries[0].Citation)
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		style types.Style
		want  string
	}{
		{types.StyleMLA, "Works Cited"},
		{types.StyleAPA, "References"},
		{types.StyleChicago, "Bibliography"},
		{"", "Works Cited"},
	}
	for _, tt := range tests {
		if got := Heading(tt.style); got != tt.want {
			t.Errorf("Heading(%q) = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestAssembleSingle(t *testing.T) {
	r := blogRecord()
	got := Assemble([]types.CaptureRecord{r}, Options{Style: types.StyleMLA})
	want := "Works Cited\n\n" + cite.Render(r, types.StyleMLA) + "\n"
	if got != want {
		t.Errorf("Assemble\n got: %q\nwant: %q", got, want)
	}
}

func TestAssembleOrder(t *testing.T) {
	records := []types.CaptureRecord{blogRecord(), surveyRecord()}
	got := Assemble(records, Options{Style: types.StyleAPA})

	if !strings.HasPrefix(got, "References\n") {
		t.Fatalf("missing heading: %q", got)
	}
	// Sort keys are Pike and Roe.
	pike := strings.Index(got, "Pike, Rob")
	doe := strings.Index(got, "Doe, Jane")
	if pike < 0 || doe < 0 || pike > doe {
		t.Errorf("entries out of order: %q", got)
	}
}

func TestAssembleGrouped(t *testing.T) {
	records := []types.CaptureRecord{blogRecord(), surveyRecord()}
	got := Assemble(records, Options{Style: types.StyleMLA, Group: true})

	academic := strings.Index(got, "\nAcademic Sources\n")
	websites := strings.Index(got, "\nWebsites\n")
	if academic < 0 || websites < 0 {
		t.Fatalf("missing group headers: %q", got)
	}
	if academic > websites {
		t.Errorf("Academic Sources must precede Websites")
	}
	if strings.Contains(got, "Books") {
		t.Errorf("empty category printed: %q", got)
	}
	if idx := strings.Index(got, "Deep Learning Survey"); idx < academic || idx > websites {
		t.Errorf("academic entry not under its header")
	}
}

func TestCategoriesCoverEveryType(t *testing.T) {
	seen := make(map[types.SourceType]bool)
	for _, c := range Categories {
		for _, st := range c.Types {
			if seen[st] {
				t.Errorf("%s in more than one category", st)
			}
			seen[st] = true
		}
	}
	for _, st := range types.AllSourceTypes {
		if !seen[st] {
			t.Errorf("%s has no category", st)
		}
	}
}

func TestAssemblePlain(t *testing.T) {
	got := Assemble([]types.CaptureRecord{surveyRecord()}, Options{Plain: true})
	if strings.Contains(got, "<em>") {
		t.Errorf("plain output has markup: %q", got)
	}
	if !strings.Contains(got, "*arXiv*") {
		t.Errorf("plain output lost emphasis: %q", got)
	}
}

func TestHangingIndent(t *testing.T) {
	got := HangingIndent("aaa bbb ccc ddd", 7)
	want := "aaa bbb\n    ccc\n    ddd"
	if got != want {
		t.Errorf("HangingIndent = %q, want %q", got, want)
	}
	if got := HangingIndent("short", 0); got != "short" {
		t.Errorf("width 0 = %q", got)
	}
	if got := HangingIndent("averyveryverylongword x", 5); got != "averyveryverylongword\n    x" {
		t.Errorf("long word = %q", got)
	}
}

func TestCitationKeys(t *testing.T) {
	corp := blogRecord()
	corp.Author = "World Health Organization"
	noAuthor := types.CaptureRecord{SourceTitle: "The Official Statement | EPA", SourceURL: "https://www.epa.gov/s"}
	accented := blogRecord()
	accented.Author = "José Núñez"

	tests := []struct {
		name   string
		record types.CaptureRecord
		want   string
	}{
		{"first author surname", surveyRecord(), "Doe2023"},
		{"corporate first word", corp, "World2023"},
		{"no author no year", noAuthor, "Officialnd"},
		{"diacritics folded", accented, "Nunez2023"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CitationKeys([]types.CaptureRecord{tt.record})
			if got[0] != tt.want {
				t.Errorf("key = %q, want %q", got[0], tt.want)
			}
		})
	}
}

func TestCitationKeysCollisions(t *testing.T) {
	records := []types.CaptureRecord{blogRecord(), surveyRecord(), blogRecord()}
	got := CitationKeys(records)
	want := []string{"Pike2023a", "Doe2023", "Pike2023b"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keys = %v, want %v", got, want)
			break
		}
	}
}

func TestBibTeX(t *testing.T) {
	got := BibTeX([]types.CaptureRecord{surveyRecord()})
	want := "@article{Doe2023,\n" +
		"  title = {Deep Learning Survey},\n" +
		"  author = {Jane Doe and John Roe},\n" +
		"  year = {2023},\n" +
		"  journal = {arXiv},\n" +
		"  volume = {5},\n" +
		"  number = {2},\n" +
		"  pages = {10--20},\n" +
		"  doi = {10.1234/abc},\n" +
		"  url = {https://arxiv.org/abs/2301.00001},\n" +
		"  urldate = {2024-03-01},\n" +
		"}\n\n"
	if got != want {
		t.Errorf("BibTeX\n got: %s\nwant: %s", got, want)
	}
}

func TestBibTeXEntryTypes(t *testing.T) {
	corp := blogRecord()
	corp.Author = "World Health Organization"

	got := BibTeX([]types.CaptureRecord{blogRecord(), corp})
	if !strings.Contains(got, "@online{Pike2023,") {
		t.Errorf("website entry type: %s", got)
	}
	if !strings.Contains(got, "author = {{World Health Organization}}") {
		t.Errorf("corporate author not braced: %s", got)
	}
	if strings.Contains(got, "journal =") {
		t.Errorf("website entry has journal field: %s", got)
	}
	for st, bt := range bibtexTypes {
		if bt == "" {
			t.Errorf("%s has no BibTeX type", st)
		}
	}
	if len(bibtexTypes) != len(types.AllSourceTypes) {
		t.Errorf("bibtexTypes has %d entries, want %d", len(bibtexTypes), len(types.AllSourceTypes))
	}
}

func TestFormatCSL(t *testing.T) {
	corp := blogRecord()
	corp.Author = "World Health Organization"

	var buf bytes.Buffer
	if err := FormatCSL([]types.CaptureRecord{surveyRecord(), corp}, &buf); err != nil {
		t.Fatal(err)
	}

	var items []CSLItem
	if err := yaml.Unmarshal(buf.Bytes(), &items); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	survey := items[0]
	if survey.ID != "Doe2023" || survey.Type != "article-journal" {
		t.Errorf("survey id/type = %q/%q", survey.ID, survey.Type)
	}
	if len(survey.Author) != 2 || survey.Author[0].Family != "Doe" || survey.Author[0].Given != "Jane" {
		t.Errorf("survey authors = %+v", survey.Author)
	}
	if survey.ContainerTitle != "arXiv" || survey.Volume != "5" || survey.Page != "10-20" || survey.DOI != "10.1234/abc" {
		t.Errorf("survey fields = %+v", survey)
	}
	if survey.Issued == nil || len(survey.Issued.DateParts[0]) != 3 || survey.Issued.DateParts[0][0] != 2023 {
		t.Errorf("survey issued = %+v", survey.Issued)
	}
	if survey.Accessed == nil || survey.Accessed.DateParts[0][1] != 3 {
		t.Errorf("survey accessed = %+v", survey.Accessed)
	}

	web := items[1]
	if web.Type != "webpage" {
		t.Errorf("web type = %q", web.Type)
	}
	if len(web.Author) != 1 || web.Author[0].Literal != "World Health Organization" {
		t.Errorf("corporate author = %+v", web.Author)
	}
}

func TestParseAuthorName(t *testing.T) {
	tests := []struct {
		name string
		want CSLName
	}{
		{"Jane Doe", CSLName{Given: "Jane", Family: "Doe"}},
		{"Ludwig van Beethoven", CSLName{Given: "Ludwig van", Family: "Beethoven"}},
		{"Doe, Jane", CSLName{Family: "Doe", Given: "Jane"}},
		{"Plato", CSLName{Literal: "Plato"}},
		{"", CSLName{}},
	}
	for _, tt := range tests {
		if got := parseAuthorName(tt.name); got != tt.want {
			t.Errorf("parseAuthorName(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}
