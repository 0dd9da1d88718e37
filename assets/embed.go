// Package assets embeds the tier word lists and the SQL migrations.
package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed words/*.txt sql/*.sql
var FS embed.FS

// readLines returns the non-blank, non-comment lines of an embedded file,
// trimmed and uppercased.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded list for a tier name ("easy", "medium", "hard").
func WordList(tier string) ([]string, error) {
	return readLines("words/" + tier + ".txt")
}

// Migrations exposes the embedded sql/ directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		// sql/ is embedded at build time; Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}
