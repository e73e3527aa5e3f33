package wordlist

import "strings"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a filter for user-supplied word lists.
func FilterForLang(lang Language) FilterFunc {
	switch lang {
	case English1k:
		return filterEnglish
	default:
		return func(string) bool { return true }
	}
}

func filterEnglish(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '\'' {
			continue
		}
		return false
	}
	return !strings.HasPrefix(word, "'")
}
