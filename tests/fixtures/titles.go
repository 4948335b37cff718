// Package fixtures provides reusable test data generators shared by the
// package tests. It eliminates test data duplication and keeps titles and
// datasets consistent across suites.
package fixtures

import (
	"strings"
	"unicode/utf8"
)

// TitleOptions configures the generated article title.
type TitleOptions struct {
	// Length is the exact rune count of the title.
	Length int

	// Language specifies the word source ("english" or "japanese").
	Language string
}

var englishWords = []string{
	"Summer", "Fashion", "Trends", "Street", "Style", "Tips", "Modern",
	"Architecture", "Dating", "in", "NYC", "Coffee", "Shop", "Review",
}

var japaneseWords = []string{
	"夏の", "ファッション", "特集", "街角", "スタイル", "建築", "珈琲",
}

// GenerateTitle returns a title of exactly opts.Length runes built from
// readable words. A Length of zero yields an empty string.
//
// Example:
//
//	title := GenerateTitle(TitleOptions{Length: 50, Language: "english"})
//	// utf8.RuneCountInString(title) == 50
func GenerateTitle(opts TitleOptions) string {
	words := englishWords
	sep := " "
	if opts.Language == "japanese" {
		words = japaneseWords
		sep = ""
	}

	var builder strings.Builder
	for i := 0; utf8.RuneCountInString(builder.String()) < opts.Length; i++ {
		if builder.Len() > 0 {
			builder.WriteString(sep)
		}
		builder.WriteString(words[i%len(words)])
	}

	return truncateRunes(builder.String(), opts.Length)
}

// Title returns an English title of exactly length runes.
func Title(length int) string {
	return GenerateTitle(TitleOptions{Length: length, Language: "english"})
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
