package extract

// Extractor defines a minimal interface for record extraction strategies.
// Implementations can swap parsing tactics without changing callers.
type Extractor interface {
	// Extract converts raw HTML bytes into a Document.
	// Implementations should be deterministic and avoid side effects.
	Extract(input []byte) (Document, error)
}

// LabelExtractor uses FromHTML: bolded labels inside #page-content become
// keys and the text after them becomes values.
type LabelExtractor struct{}

func (LabelExtractor) Extract(input []byte) (Document, error) {
	return FromHTML(input)
}
