package llm

import (
	"encoding/json"
	"io"
	"strings"

	"zalestorm.app/crm/common/sse"
)

type chunkPayload struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// AccumulateContent consumes a chat-completion SSE stream and concatenates the
// delta content of every frame, stopping at the [DONE] sentinel or transport
// EOF. This is the reference consumer for the streaming chat response; frames
// that are not valid chunk JSON are skipped.
func AccumulateContent(r io.Reader) (string, error) {
	var b strings.Builder
	dec := sse.NewDecoder(r)

	for dec.Next() {
		var payload chunkPayload
		if err := json.Unmarshal(dec.Data(), &payload); err != nil {
			continue
		}
		for _, choice := range payload.Choices {
			b.WriteString(choice.Delta.Content)
		}
	}

	return b.String(), dec.Err()
}
