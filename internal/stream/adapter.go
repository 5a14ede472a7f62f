// Package stream translates internal pipeline events into the public,
// line-delimited message vocabulary clients consume.
package stream

import (
	"context"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/entity"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/pipeline"
)

type MessageType string

// The closed public message vocabulary. Everything a client ever receives
// is one of these, as a single {type, data} JSON object per line.
const (
	MessageAnalystThoughts   MessageType = "analyst_thoughts"
	MessageAnalystKeywords   MessageType = "analyst_keywords"
	MessageRetrievedProducts MessageType = "retrieved_products"
	MessageToken             MessageType = "token"
	MessageStylistPitch      MessageType = "stylist_pitch"
	MessageError             MessageType = "error"
)

type Message struct {
	Type MessageType `json:"type"`
	Data any         `json:"data"`
}

// Adapter maps engine events onto public messages. StageStarted and
// RunFinished are internal-only and swallowed; clients infer completion
// from stream closure.
type Adapter struct{}

func NewAdapter() *Adapter {
	return &Adapter{}
}

// Pipe consumes the engine's event sequence and produces the public message
// sequence, preserving order. After a StageFailed it emits one error message,
// drains the rest of the run, and closes — no partial success for the failing
// stage or anything after it. Cancelling ctx releases the goroutine even when
// the consumer has stopped reading.
func (a *Adapter) Pipe(ctx context.Context, events <-chan pipeline.Event) <-chan Message {
	out := make(chan Message)

	go func() {
		defer close(out)

		// send delivers one message unless the run was cancelled.
		send := func(msg Message) bool {
			select {
			case out <- msg:
				return true
			case <-ctx.Done():
				return false
			}
		}

		tokensSeen := false

		for ev := range events {
			switch e := ev.(type) {
			case pipeline.StageCompleted:
				for _, msg := range mapStageCompleted(e, tokensSeen) {
					if !send(msg) {
						return
					}
				}

			case pipeline.TokenEmitted:
				tokensSeen = true
				if !send(Message{Type: MessageToken, Data: e.Text}) {
					return
				}

			case pipeline.StageFailed:
				if !send(Message{Type: MessageError, Data: e.Err.Error()}) {
					return
				}
				// Let the engine finish its run before closing
				for range events {
				}
				return

			case pipeline.StageStarted, pipeline.RunFinished:
				// Internal lifecycle only, not forwarded
			}
		}
	}()

	return out
}

func mapStageCompleted(e pipeline.StageCompleted, tokensSeen bool) []Message {
	switch e.Stage {
	case pipeline.StageInterpret:
		keywords := e.Update.RefinedKeywords
		if keywords == nil {
			keywords = []string{}
		}
		return []Message{
			{Type: MessageAnalystThoughts, Data: e.Update.AnalystThoughts},
			{Type: MessageAnalystKeywords, Data: keywords},
		}

	case pipeline.StageRetrieve:
		products := e.Update.RetrievedProducts
		if products == nil {
			products = []entity.ProductMatch{}
		}
		return []Message{
			{Type: MessageRetrievedProducts, Data: products},
		}

	case pipeline.StageSynthesize:
		// Normally the pitch already reached the client token by token.
		// The short-circuit path (empty retrieval) streams nothing, so the
		// fixed fallback pitch is delivered whole instead.
		if !tokensSeen && e.Update.StylistPitch != "" {
			return []Message{
				{Type: MessageStylistPitch, Data: e.Update.StylistPitch},
			}
		}
	}

	return nil
}
