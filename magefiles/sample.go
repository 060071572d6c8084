//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// sampleQuotes covers one source of each major type so the citation
// output of every renderer can be eyeballed.
var sampleQuotes = [][]string{
	{"--text", "Concurrency is not parallelism.", "--url", "https://go.dev/blog/waza-talk",
		"--title", "Concurrency is not Parallelism | The Go Blog", "--author", "Rob Pike", "--date", "January 16, 2013"},
	{"--text", "We present a new approach.", "--url", "https://arxiv.org/abs/1706.03762",
		"--title", "Attention Is All You Need", "--author", "Ashish Vaswani and Noam Shazeer",
		"--date", "2017", "--source-name", "Advances in Neural Information Processing Systems", "--volume", "30", "--pages", "5998-6008"},
	{"--text", "Separate educational facilities are inherently unequal.",
		"--url", "https://supreme.justia.com/cases/federal/us/347/483/", "--title", "Brown v. Board of Education, 347 U.S. 483 (1954)"},
	{"--text", "The key words MUST and SHOULD are to be interpreted as described.",
		"--url", "https://www.rfc-editor.org/rfc/rfc2119", "--title", "RFC 2119: Key words for use in RFCs", "--author", "Scott Bradner", "--date", "March 1997"},
	{"--text", "Here is how it works.", "--url", "https://www.youtube.com/watch?v=oV9rvDllKEg",
		"--title", "Concurrency is not Parallelism", "--video", "--channel", "Gopher Academy", "--platform", "YouTube", "--upload-date", "2013-01-16"},
}

// Sample builds the CLI and saves a set of sample quotes into
// bin/sample.db, then prints the MLA bibliography.
func Sample() error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)
	db := filepath.Join(binDir, "sample.db")
	for _, args := range sampleQuotes {
		if err := sh.Run(bin, append([]string{"save", "--db", db}, args...)...); err != nil {
			return fmt.Errorf("saving sample: %w", err)
		}
	}
	return sh.RunV(bin, "bibliography", "--db", db, "--group", "--plain")
}
