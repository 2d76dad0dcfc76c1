package matching

import (
	"fmt"
	"os"
	"strings"

	"github.com/spigell/skillmatch/internal/extract"
)

// Keywords is the list of terms the keyword-overlap score looks for.
type Keywords []string

// DefaultKeywords is used when no keyword list is configured.
var DefaultKeywords = Keywords{"c++", "python", "java", "teamwork", "communication"}

// Source describes where a keyword list comes from.
type Source struct {
	// Inline keywords from configuration or flags.
	Inline []string
	// File holds keywords one per line or comma separated. Lines starting
	// with # are ignored. When set it takes precedence over Inline.
	File string
}

// LoadKeywords resolves src into a lowercased, trimmed, de-duplicated list.
// DefaultKeywords is returned when neither File nor Inline is set. A file that
// yields no keywords is an error.
func LoadKeywords(src Source) (Keywords, error) {
	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading keywords from file %q: %w", file, err)
		}

		var raw []string
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			raw = append(raw, strings.Split(line, ",")...)
		}

		keywords := normalize(raw)
		if len(keywords) == 0 {
			return nil, fmt.Errorf("keywords file %q is empty", file)
		}
		return keywords, nil
	}

	keywords := normalize(src.Inline)
	if len(keywords) == 0 {
		return append(Keywords(nil), DefaultKeywords...), nil
	}
	return keywords, nil
}

func normalize(raw []string) Keywords {
	seen := make(map[string]struct{}, len(raw))
	var out Keywords
	for _, kw := range raw {
		kw = extract.Lower(extract.Trim(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
