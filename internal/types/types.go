package types

// FailureReason names why a file could not be handed to the matcher.
type FailureReason string

const (
	ReasonNone     FailureReason = ""
	ReasonOpen     FailureReason = "open"
	ReasonRead     FailureReason = "read"
	ReasonDecode   FailureReason = "decode"
	ReasonTooLarge FailureReason = "too_large"
)

// ReadResult is the outcome of loading one candidate file. Exactly one of
// Content (Reason == ReasonNone) or Err is meaningful.
type ReadResult struct {
	Path    string
	Content string
	Reason  FailureReason
	Err     error
}

// OK reports whether the file was loaded and decoded.
func (r ReadResult) OK() bool { return r.Reason == ReasonNone }

// FileReport lists the distinct emoji runs found in one file, in the order
// they first appear.
// Rel is Path relative to the scan root, slash-separated.
type FileReport struct {
	Path  string   `json:"path"`
	Rel   string   `json:"rel,omitempty"`
	Emoji []string `json:"emoji"`
}
