package narration

import (
	"fmt"
	"strings"
)

var ssmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeSSML makes raw text safe inside an SSML document.
func escapeSSML(text string) string {
	return ssmlEscaper.Replace(text)
}

// wrapSSML builds a speak document with a medium prosody rate and a
// trailing pause of the given length in milliseconds. A pause of zero
// omits the break element.
func wrapSSML(text string, pauseMillis int) string {
	var b strings.Builder
	b.WriteString(`<speak><prosody rate="medium">`)
	b.WriteString(escapeSSML(text))
	b.WriteString(`</prosody>`)
	if pauseMillis > 0 {
		fmt.Fprintf(&b, `<break time="%dms"/>`, pauseMillis)
	}
	b.WriteString(`</speak>`)
	return b.String()
}
