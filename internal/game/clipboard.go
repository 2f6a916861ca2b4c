package game

import (
	"fortio.org/log"
	"github.com/atotto/clipboard"
)

// copySummary puts text on the system clipboard. Headless machines have no
// clipboard; the failure is logged and otherwise ignored.
func (g *Game) copySummary(text string) {
	if err := g.writeClipboard(text); err != nil {
		log.Warnf("clipboard unavailable: %v", err)
		return
	}
	log.Infof("Copied run summary to clipboard (%d bytes)", len(text))
}

func systemClipboard(text string) error {
	return clipboard.WriteAll(text)
}
