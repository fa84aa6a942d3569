package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys double as the English text.
const (
	msgTitle       = "Segmented progress"
	msgStatus      = "Progress %d of %d · style %s"
	msgOutOfBounds = "Progress %d is outside 0..%d"
	msgNegative    = "Progress cannot go below zero"
	msgCountBelow  = "Cannot drop to %d segments while progress is %d"
)

func init() {
	for _, e := range []struct{ key, msg string }{
		{msgTitle, "Progression segmentée"},
		{msgStatus, "Progression %d sur %d · style %s"},
		{msgOutOfBounds, "La progression %d sort de 0..%d"},
		{msgNegative, "La progression ne peut pas être négative"},
		{msgCountBelow, "Impossible de passer à %d segments avec une progression de %d"},
	} {
		_ = message.SetString(language.French, e.key, e.msg)
	}
}

// Languages lists the languages with translated status text.
var Languages = []language.Tag{language.English, language.French}

// matchLanguage picks the best supported language for tag.
func matchLanguage(tag language.Tag) language.Tag {
	m := language.NewMatcher(Languages)
	_, i, _ := m.Match(tag)
	return Languages[i]
}
