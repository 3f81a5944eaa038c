package telegram

import (
	"fmt"
	"strings"

	"github.com/lucasmeira/rosary-digest/internal/feed"
	"github.com/lucasmeira/rosary-digest/internal/summarize"
)

// maxMessageLen is the Telegram Bot API hard limit for a single message.
const maxMessageLen = 4096

const closingCaption = "_Simple summary for hand copying and reflection_"

const truncationNote = "\n\n(truncated)"

// RenderMessage builds the fixed-template delivery message:
//
//	🔮 Day <N>- <Title>
//	<date>
//
//	🙏 Meditation Summary
//
//	• Artwork: <...>        (only when detected)
//	• <bullet 1..8>
//
//	_Simple summary for hand copying and reflection_
func RenderMessage(ep *feed.Episode, sum *summarize.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🔮 Day %d- %s\n", ep.Day, ep.Title)
	b.WriteString(ep.Published.Format("January 2, 2006"))
	b.WriteString("\n\n🙏 Meditation Summary\n\n")

	if sum.Artwork != "" {
		fmt.Fprintf(&b, "• Artwork: %s\n", sum.Artwork)
	}
	for _, bullet := range sum.Bullets {
		fmt.Fprintf(&b, "• %s\n", bullet)
	}

	b.WriteString("\n")
	b.WriteString(closingCaption)

	msg := b.String()
	if len(msg) > maxMessageLen {
		cut := maxMessageLen - len(truncationNote)
		// Cut at a line boundary so no bullet (or rune) is split.
		if i := strings.LastIndex(msg[:cut], "\n"); i > 0 {
			cut = i
		}
		msg = msg[:cut] + truncationNote
	}
	return msg
}
