package profanity

import (
	"embed"
	"encoding/json"
	"log"
	"regexp"
	"strings"
	"sync"
)

var (
	// Global instance for reuse (thread-safe)
	defaultFilter *Filter
	once          sync.Once
)

//go:embed words.json
var jsonData embed.FS

func loadBannedWords() []string {
	data, err := jsonData.ReadFile("words.json")
	if err != nil {
		log.Fatalf("Failed to read embedded file: %s", err)
	}

	var bannedWords []string
	if err := json.Unmarshal(data, &bannedWords); err != nil {
		log.Fatalf("Failed to unmarshal JSON: %s", err)
	}
	return bannedWords
}

// Filter rejects messages containing banned words. Matching is
// case-insensitive and whole-word.
type Filter struct {
	regex *regexp.Regexp
}

func NewFilter() *Filter {
	once.Do(func() {
		defaultFilter = &Filter{
			regex: buildMasterRegex(),
		}
	})

	return defaultFilter
}

func (f *Filter) ContainsProfanity(text string) bool {
	if text == "" {
		return false
	}

	return f.regex.MatchString(strings.ToLower(text))
}

func buildMasterRegex() *regexp.Regexp {
	words := loadBannedWords()

	quoted := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(strings.ToLower(w))
		if w == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}

	pattern := `(?i)\b(` + strings.Join(quoted, "|") + `)\b`
	return regexp.MustCompile(pattern)
}
