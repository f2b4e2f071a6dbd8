package language

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed stopwords/*.txt
var stopWordFiles embed.FS

// StopWordList is a StopWordFilter backed by a fixed word set.
type StopWordList map[string]struct{}

func (l StopWordList) IsStopWord(word string) bool {
	_, ok := l[word]
	return ok
}

// loadStopWords reads stopwords/<code>.txt: one word per line, '#' starts a
// comment.
func loadStopWords(code string) (StopWordList, error) {
	f, err := stopWordFiles.Open("stopwords/" + code + ".txt")
	if err != nil {
		return nil, fmt.Errorf("open stop words for %q: %w", code, err)
	}
	defer f.Close()

	list := make(StopWordList)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		word := strings.ToLower(strings.TrimSpace(line))
		if word == "" {
			continue
		}
		list[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stop words for %q: %w", code, err)
	}
	return list, nil
}
