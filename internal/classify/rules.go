// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"regexp"
	"strings"
)

// Government signals.
var (
	// govTLDRe matches government and military hosts, including country
	// variants such as gov.uk, gouv.fr, gob.mx, go.jp and gc.ca.
	govTLDRe = regexp.MustCompile(`(^|\.)(gov|mil)(\.[a-z]{2})?$|\.(gouv|gob|govt|go|gc)\.[a-z]{2}$|(^|\.)europa\.eu$`)

	// agencyRe matches agency acronyms in titles. Case-sensitive.
	agencyRe = regexp.MustCompile(`\b(EPA|NASA|CDC|FDA|NIH|NSF|NOAA|USDA|USGS|FBI|CIA|IRS|SEC|FTC|FCC|FEMA|OSHA|GAO|CBO|HHS|DHS|DOJ)\b`)

	// agencyPhraseRe matches named ministries and legislative bodies.
	agencyPhraseRe = regexp.MustCompile(`(?i)\b(department of|ministry of|congress|congressional|senate|white house|parliament|house of representatives)\b`)

	// regulatoryRe matches regulatory-document vocabulary and U.S.C. citations.
	regulatoryRe = regexp.MustCompile(`(?i)\b(report|regulations?|executive order|statutes?|federal register|bill|act)\b|\b\d+\s+U\.S\.C\.`)
)

// agencyHosts are agency tokens recognized as host labels ("epa.ie").
var agencyHosts = map[string]bool{
	"epa": true, "nasa": true, "cdc": true, "fda": true, "nih": true,
	"noaa": true, "usda": true, "usgs": true, "fema": true, "osha": true,
	"who": true, "un": true,
}

func isGovernment(in Input) bool {
	if govTLDRe.MatchString(in.Host) {
		return true
	}
	for _, label := range strings.Split(in.Host, ".") {
		if agencyHosts[label] {
			return true
		}
	}
	return agencyRe.MatchString(in.Title) ||
		agencyPhraseRe.MatchString(in.Title) ||
		regulatoryRe.MatchString(in.Title)
}

// Legal signals.
var (
	// versusRe matches case names such as "Brown v. Board" and "Roe vs. Wade".
	versusRe = regexp.MustCompile(`\S\s+vs?\.\s+[A-Z]`)

	// reporterRe matches court-reporter citations: 347 U.S. 483, 123 F.3d 456,
	// 98 S. Ct. 2733, 500 F. Supp. 2d 100.
	reporterRe = regexp.MustCompile(`\b\d{1,4}\s+(U\.S\.|S\.\s?Ct\.|L\.\s?Ed\.(\s?2d)?|F\.(\s?(2d|3d|4th))?|F\.\s?Supp\.(\s?[23]d)?|[AP]\.[23]d|N\.E\.[23]d|So\.\s?[23]d)\s+\d{1,5}\b`)

	// courtVocabRe matches courtroom vocabulary.
	courtVocabRe = regexp.MustCompile(`(?i)\b(plaintiffs?|defendants?|ruling|tribunal|appellants?|appellees?|court of appeals|supreme court)\b`)
)

var legalHosts = []string{
	"law.justia.com", "supreme.justia.com", "casetext.com", "courtlistener.com",
	"caselaw.findlaw.com", "law.cornell.edu", "oyez.org", "leagle.com",
	"casemine.com", "law.resource.org",
}

func isLegal(in Input) bool {
	return hostIs(in.Host, legalHosts...) ||
		versusRe.MatchString(in.Title) ||
		reporterRe.MatchString(in.Title) ||
		courtVocabRe.MatchString(in.Title)
}

// Patent signals.
var (
	// usPatentRe matches US patent numbers: US 1,234,567, US10123456B2.
	usPatentRe = regexp.MustCompile(`\bUS\s?(\d{1,2},\d{3},\d{3}|\d{7,11})(\s?[A-Z]\d?)?\b`)

	// intlPatentRe matches country-code patent numbers: EP1234567, WO2020/123456.
	intlPatentRe = regexp.MustCompile(`\b(EP|WO|JP|CN|DE|GB|FR|KR|CA|AU)\s?\d{4,}(/\d+)?(\s?[A-Z]\d?)?\b`)

	// patentVocabRe matches patent vocabulary.
	patentVocabRe = regexp.MustCompile(`(?i)\b(patents?|inventors?|issued|filed)\b`)
)

var patentHosts = []string{
	"patents.google.com", "patents.justia.com", "freepatentsonline.com",
	"patentscope.wipo.int", "espacenet.com", "lens.org", "patft.uspto.gov",
}

func isPatent(in Input) bool {
	return hostIs(in.Host, patentHosts...) ||
		usPatentRe.MatchString(in.Title) ||
		intlPatentRe.MatchString(in.Title) ||
		patentVocabRe.MatchString(in.Title)
}

// Standard signals.
var (
	// designationRe matches standards designations: ISO 9001:2015, IEEE 802.11,
	// NIST SP 800-53, ISO/IEC 27001, ASTM D638, RFC 9110.
	designationRe = regexp.MustCompile(`\b(IEEE|ISO|ANSI|ASTM|IEC|NIST|IETF|W3C)(/IEC)?\s*(Std\.?\s*|SP\s*)?[A-Z]?\d+|\bRFC\s?\d{3,5}\b`)

	// standardVocabRe matches standards vocabulary.
	standardVocabRe = regexp.MustCompile(`(?i)\b(standards?|specifications?|guidelines?|code)\b`)
)

var standardHosts = []string{
	"iso.org", "standards.ieee.org", "ansi.org", "astm.org", "iec.ch",
	"ietf.org", "rfc-editor.org", "w3.org", "etsi.org", "itu.int",
}

func isStandard(in Input) bool {
	return hostIs(in.Host, standardHosts...) ||
		designationRe.MatchString(in.Title) ||
		standardVocabRe.MatchString(in.Title)
}

// videoURLRe matches video pages by host and path. Channel and home pages
// on the same platforms do not match.
var videoURLRe = regexp.MustCompile(`^([\w-]+\.)*youtube\.com/(watch|shorts/|embed/|live/)` +
	`|^youtu\.be/.+` +
	`|^([\w-]+\.)*vimeo\.com/(video/|channels/[^/]+/)?\d+` +
	`|^([\w-]+\.)*dailymotion\.com/video/` +
	`|^dai\.ly/.+` +
	`|^([\w-]+\.)*ted\.com/talks/` +
	`|^([\w-]+\.)*twitch\.tv/videos/\d+`)

func isVideo(in Input) bool {
	return videoURLRe.MatchString(in.Host + in.Path)
}

var socialHosts = []string{
	"twitter.com", "x.com", "facebook.com", "fb.com", "instagram.com",
	"linkedin.com", "tiktok.com", "threads.net", "bsky.app",
}

func isSocial(in Input) bool {
	return hostIs(in.Host, socialHosts...)
}

// Academic signals.
var (
	// eduHostRe matches university hosts: .edu, .edu.au, .ac.uk.
	eduHostRe = regexp.MustCompile(`(^|\.)edu(\.[a-z]{2})?$|\.ac\.[a-z]{2}$`)

	// academicVocabRe matches scholarly vocabulary in titles.
	academicVocabRe = regexp.MustCompile(`(?i)\b(journal|research|study|studies|proceedings|thesis|dissertation)\b`)
)

var academicHosts = []string{
	"arxiv.org", "doi.org", "jstor.org", "sciencedirect.com", "springer.com",
	"link.springer.com", "nature.com", "ieeexplore.ieee.org", "dl.acm.org",
	"semanticscholar.org", "researchgate.net", "pubmed.ncbi.nlm.nih.gov",
	"biorxiv.org", "medrxiv.org", "ssrn.com", "openalex.org", "plos.org",
}

func isAcademic(in Input) bool {
	lower := strings.ToLower(in.URL)
	return hostIs(in.Host, academicHosts...) ||
		eduHostRe.MatchString(in.Host) ||
		strings.Contains(lower, "arxiv") ||
		strings.Contains(lower, "/doi/") ||
		academicVocabRe.MatchString(in.Title)
}

// bookVocabRe matches book vocabulary in titles.
var bookVocabRe = regexp.MustCompile(`(?i)\b(books?|chapter|edition)\b`)

var bookHosts = []string{
	"books.google.com", "goodreads.com", "openlibrary.org", "gutenberg.org",
	"worldcat.org",
}

func isBook(in Input) bool {
	return hostIs(in.Host, bookHosts...) || bookVocabRe.MatchString(in.Title)
}

// newsVocabRe matches news vocabulary in titles.
var newsVocabRe = regexp.MustCompile(`(?i)\b(news|report|breaking)\b`)

var newsHosts = []string{
	"nytimes.com", "washingtonpost.com", "theguardian.com", "bbc.com",
	"bbc.co.uk", "reuters.com", "cnn.com", "npr.org", "wsj.com",
	"bloomberg.com", "aljazeera.com", "apnews.com", "latimes.com",
}

func isNews(in Input) bool {
	return newsVocabRe.MatchString(in.Title) ||
		strings.Contains(in.Host, "news") ||
		strings.Contains(in.Path, "news") ||
		hostIs(in.Host, newsHosts...)
}
