package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSwitch_SuspendIsScopedToContext(t *testing.T) {
	f := NewFilterSwitch(true)
	ctx := context.Background()
	body := `<p onclick="x()">hi</p><script>alert(1)</script>`

	suspended := f.Suspend(ctx)
	assert.False(t, f.Active(suspended))
	assert.Equal(t, body, f.Apply(suspended, body))

	assert.True(t, f.Active(ctx))
	filtered := f.Apply(ctx, body)
	assert.NotContains(t, filtered, "script")
	assert.NotContains(t, filtered, "onclick")
	assert.Contains(t, filtered, "hi")
}

func TestFilterSwitch_Disabled(t *testing.T) {
	f := NewFilterSwitch(false)
	body := `<script>x</script>`

	assert.Equal(t, body, f.Apply(context.Background(), body))

	var nilSwitch *FilterSwitch
	assert.False(t, nilSwitch.Active(context.Background()))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Fish & Chips", SanitizeText("<b>Fish</b>   &amp; Chips\n"))
	assert.Equal(t, []string{"red", "blue"}, SanitizeList(" red , <i>blue</i>,, "))
	assert.Empty(t, SanitizeList(""))
}

func TestSanitizeText_KeepsStrayBrackets(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "5 < 6 > 2", want: "5 < 6 > 2"},
		{input: "1<2", want: "1<2"},
		{input: "a <b>bold</b> < c", want: "a bold < c"},
		{input: "unclosed <tag", want: "unclosed <tag"},
		{input: "<!-- note -->text", want: "text"},
		{input: "x -> y", want: "x -> y"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeText(tt.input), "input %q", tt.input)
	}
}

func TestExtractImages(t *testing.T) {
	body := `<p><img src="a.png"></p><img alt="none"><figure><img src='b.webp' /></figure>`

	assert.Equal(t, []string{"a.png", "b.webp"}, ExtractImages(body))
	assert.Empty(t, ExtractImages("<p>text</p>"))
}
