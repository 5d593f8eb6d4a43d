package domain

// Artifact is a rendered, exportable map document. The body is opaque to the
// pipeline; only the exporter interprets it.
type Artifact struct {
	Body []byte
}
