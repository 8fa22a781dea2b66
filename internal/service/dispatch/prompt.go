package dispatch

import "fmt"

// groundingInstruction restricts the model to the supplied context. The
// wording is part of the dispatcher contract: it must tell the model to admit
// when the context is insufficient instead of guessing.
const groundingInstruction = "Answer the question using only the context provided below. " +
	"If the context does not contain the information needed to answer, " +
	"say that you cannot answer from the provided context."

// BuildPrompt wraps input in the grounding template when a context is
// present. Without a context the prompt is the raw input, untouched.
func BuildPrompt(input, contextText string) string {
	if contextText == "" {
		return input
	}
	return fmt.Sprintf("%s\n\nContext:\n%s\n\nQuestion: %s", groundingInstruction, contextText, input)
}
