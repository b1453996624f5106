// Package assets embeds the default word lists and the SQLite migrations.
package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed words.txt allowed.txt
var FS embed.FS

//go:embed sql/*.sql
var migrations embed.FS

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
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordsList returns the default secret words in play order.
func WordsList() ([]string, error) {
	return readLines("words.txt")
}

// AllowedList returns the default extra guess words.
func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}

// Migrations exposes the sql/ directory with the schema scripts.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "sql")
	if err != nil {
		// sql/ is embedded at compile time; Sub only fails on a bad path.
		panic(err)
	}
	return sub
}
