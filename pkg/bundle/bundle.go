// Package bundle groups .resx files on disk into locale-variant bundles
// and loads a bundle into a key-by-locale table.
//
// Grouping is a filename heuristic, not a parse: "Strings.resx" and
// "Strings.de-DE.resx" in one directory form the group "Strings" with
// locales "default" and "de-DE". The heuristic never affects mutation
// semantics; it only decides which files are presented together.
package bundle

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/resxtools/resxkit/pkg/resx"
)

// Ext is the file extension the scanner looks for.
const Ext = ".resx"

// DefaultLocale marks the neutral, suffix-less variant of a group.
const DefaultLocale = "default"

// maxLocaleLen bounds the locale-suffix heuristic. Real codes run from
// "de" to "az-Latn-AZ"; anything longer is part of the base name.
const maxLocaleLen = 10

// LocaleFile is one language variant inside a group.
type LocaleFile struct {
	Path   string `json:"path"`
	Locale string `json:"locale"`
}

// Group is a set of locale variants sharing a base name and directory.
type Group struct {
	Name      string       `json:"name"`
	Directory string       `json:"directory"`
	Files     []LocaleFile `json:"files"`
}

// Row is one key across every locale of a group.
type Row struct {
	Key    string            `json:"key"`
	Values map[string]string `json:"values"` // locale -> value
}

// splitStem decides whether the final dot-separated segment of a file
// stem is a locale code. It is one when it is short enough and starts
// with an ASCII letter; otherwise the whole stem is the group name.
func splitStem(stem string) (name, locale string) {
	i := strings.LastIndexByte(stem, '.')
	if i < 0 {
		return stem, DefaultLocale
	}
	suffix := stem[i+1:]
	if len(suffix) == 0 || len(suffix) > maxLocaleLen {
		return stem, DefaultLocale
	}
	c := suffix[0]
	if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
		return stem, DefaultLocale
	}
	return stem[:i], suffix
}

// Scan walks the directory tree under root and groups every .resx file
// it finds. Files within a group are sorted default-first then by
// locale; groups are sorted by name, directory as tiebreak. Unreadable
// subtrees are skipped rather than failing the scan.
func Scan(root string) ([]Group, error) {
	groups := make(map[string]*Group)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), Ext) {
			return nil
		}
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		name, locale := splitStem(stem)
		dir := filepath.Dir(path)

		id := dir + "::" + name
		g, ok := groups[id]
		if !ok {
			g = &Group{Name: name, Directory: dir}
			groups[id] = g
		}
		g.Files = append(g.Files, LocaleFile{Path: path, Locale: locale})
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		sort.Slice(g.Files, func(i, j int) bool {
			a, b := g.Files[i], g.Files[j]
			if (a.Locale == DefaultLocale) != (b.Locale == DefaultLocale) {
				return a.Locale == DefaultLocale
			}
			return a.Locale < b.Locale
		})
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Directory < out[j].Directory
	})
	return out, nil
}

// Load parses every file of a group into rows keyed by entry key and
// sorted by key. Files that fail to parse are skipped so one broken
// variant does not hide the rest of the bundle.
func Load(files []LocaleFile) ([]Row, error) {
	byKey := make(map[string]map[string]string)
	for _, f := range files {
		parsed, err := resx.ParseFile(f.Path)
		if err != nil {
			continue
		}
		for k, v := range parsed {
			m, ok := byKey[k]
			if !ok {
				m = make(map[string]string)
				byKey[k] = m
			}
			m[f.Locale] = v
		}
	}

	rows := make([]Row, 0, len(byKey))
	for k, values := range byKey {
		rows = append(rows, Row{Key: k, Values: values})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows, nil
}
