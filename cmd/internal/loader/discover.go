package loader

import (
	"os"
	"path/filepath"
	"regexp"
)

// Crawler layout: root/<id>/<company name>/si/<timestamp>.xml|.xhtml, with
// the timestamp embedded in the filename.
var timestampPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}`)

// companyDirs returns the per-company directories two levels below root.
func companyDirs(root string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(root, "*", "*"))
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, m)
	}
	return dirs, nil
}

// latestDocument picks the authoritative filing for one company: the
// xml/xhtml file under si/ with the latest timestamp token. The tokens sort
// lexicographically as timestamps, so a plain string comparison suffices.
// Files without a token never become authoritative. ok is false when the
// company has no candidates at all.
func latestDocument(dir string) (path string, ok bool) {
	xmlFiles, _ := filepath.Glob(filepath.Join(dir, "si", "*.xml"))
	xhtmlFiles, _ := filepath.Glob(filepath.Join(dir, "si", "*.xhtml"))
	candidates := append(xmlFiles, xhtmlFiles...)

	latest := ""
	for _, c := range candidates {
		token := timestampPattern.FindString(filepath.Base(c))
		if token == "" {
			continue
		}
		if path == "" || token > latest {
			path = c
			latest = token
		}
	}
	return path, path != ""
}
