package driven

// ContentProvider materialises the text content of a file.
type ContentProvider interface {
	// ReadToText reads the whole file at path.
	// Returns an error if the file is missing, unreadable, or not valid UTF-8.
	ReadToText(path string) (string, error)
}
