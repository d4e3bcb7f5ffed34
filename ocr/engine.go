package ocr

// Engine is the optical character recognition capability the image
// extractor delegates to. Implementations probe their backing install
// once at startup; Available reports the result of that probe so a
// missing engine degrades to a tagged failure instead of a crash.
type Engine interface {
	Available() bool
	Languages() []string
	Recognize(image []byte) (string, error)
}
