package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetadata(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		wantTitle string
		wantLang  string
	}{
		{
			name:      "title and lang",
			html:      `<html lang="de"><head><title> Installation </title></head><body></body></html>`,
			wantTitle: "Installation",
			wantLang:  "de",
		},
		{
			name:      "h1 fallback and default lang",
			html:      `<html><body><h1>Quick start</h1></body></html>`,
			wantTitle: "Quick start",
			wantLang:  "en",
		},
		{
			name:      "nothing found",
			html:      `<p>text</p>`,
			wantTitle: "",
			wantLang:  "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, lang := Metadata(tt.html)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantLang, lang)
		})
	}
}
