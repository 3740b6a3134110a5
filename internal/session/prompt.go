package session

import (
	"strings"

	"github.com/minewise/pitpixie/internal/core"
)

// Variant selects the fixed instruction block of a composed prompt.
type Variant int

const (
	// VariantConversational asks for step-by-step reasoning with labelled
	// Reasoning/Answer sections and bracketed citations.
	VariantConversational Variant = iota
	// VariantConcise asks for terse numeric-style answers, 20 words max,
	// no citations, "unknown" when ungrounded.
	VariantConcise
)

// NoContextSentinel replaces the context block when retrieval found nothing.
const NoContextSentinel = "No relevant context found."

const conversationalInstructions = "You are a friendly and helpful AI assistant specialised in analysing Pit-Void data.\n" +
	"Think step-by-step, reference the provided context, and verify each conclusion before you state it.\n" +
	"First provide a brief rationale (labelled ‘Reasoning’) then give the final answer (labelled ‘Answer’).\n" +
	"Cite the document title in square brackets whenever you use information from it. " +
	"If the context is insufficient, simply say you do not know.\n"

const conciseInstructions = "You are a specialised AI for Pit-Void analysis.\n" +
	"Instructions:\n" +
	"- Answer as concisely as possible. If the question asks for a quantity, only provide the number. " +
	"If the question implies an area or total, only provide the final value.\n" +
	"Try to limit your response to 20 words maximum.\n" +
	"- Use the provided context to answer the question.\n" +
	"Build on the historical context of the conversation.\n" +
	"- Do not include extra explanation or reasoning unless explicitly requested, however do take the time " +
	"to do extra reasoning to ensure completeness of your answer.\n" +
	"- If the context is insufficient, reply with your best effort, or if you are really struggling reply 'unknown'.\n"

// Compose assembles the full model input: instruction block, prior turns,
// retrieved grounding pairs, the question and a trailing answer cue.
// Pure and byte-stable for identical inputs.
func Compose(question string, pairs []core.GroundingPair, history []core.Turn, variant Variant) string {
	var sb strings.Builder

	switch variant {
	case VariantConcise:
		sb.WriteString(conciseInstructions)
	default:
		sb.WriteString(conversationalInstructions)
	}
	sb.WriteString("\n")

	historyLines := make([]string, 0, len(history))
	for _, turn := range history {
		historyLines = append(historyLines, "User: "+turn.Question+"\nAssistant: "+turn.Answer)
	}
	sb.WriteString(strings.Join(historyLines, "\n"))
	sb.WriteString("\n\n")

	sb.WriteString("Context:\n")
	if len(pairs) == 0 {
		sb.WriteString(NoContextSentinel)
	} else {
		contextLines := make([]string, 0, len(pairs))
		for _, pair := range pairs {
			contextLines = append(contextLines, "- ["+pair.Title+"] "+pair.Snippet)
		}
		sb.WriteString(strings.Join(contextLines, "\n"))
	}
	sb.WriteString("\n\n")

	sb.WriteString("Question: " + question + "\n")
	sb.WriteString("Answer:")

	return sb.String()
}
