package analysis

// EmptyInputError indicates the extractor was called with empty or
// whitespace-only text. This is the extractor's only precondition violation;
// it is returned to the caller immediately and never retried.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "answer text is empty"
}
