package generation

// FailureKind classifies why a generation run did not produce a description.
type FailureKind string

// Failure kinds, one per pipeline stage that can stop a run.
const (
	KindConfiguration FailureKind = "configuration"
	KindResolution    FailureKind = "resolution"
	KindContent       FailureKind = "content"
	KindProvider      FailureKind = "provider"
	KindEmptyResponse FailureKind = "empty_response"
	KindUnexpected    FailureKind = "unexpected"
)

// User-facing failure messages.
const (
	MsgDisabled            = "AI meta description generation is disabled."
	MsgNoChatProvider      = "No AI provider configured for chat."
	MsgNoDefaultProvider   = "No default AI provider configured."
	MsgProviderUnavailable = "Configured AI provider is not available."
	MsgNoContent           = "No content available to generate description from."
	MsgExtractionFailed    = "Unable to extract content from this item."
	MsgRequestFailedPrefix = "AI request failed: "
	MsgUnexpected          = "An unexpected error occurred."
	MsgEmptyResponse       = "AI returned an empty response."
)

// Result is the outcome of a generation run. It is either a Success or a
// Failure; no other implementations exist outside this package.
type Result interface {
	isResult()
}

// Success carries a post-processed, non-empty description.
type Success struct {
	Description string
}

// Failure carries the reason a run stopped.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (Success) isResult() {}
func (Failure) isResult() {}

// Outcome returns a short label for r, used for metrics and logs.
func Outcome(r Result) string {
	switch v := r.(type) {
	case Success:
		return "success"
	case Failure:
		return string(v.Kind)
	default:
		return "unknown"
	}
}

func fail(kind FailureKind, message string) Failure {
	return Failure{Kind: kind, Message: message}
}
