// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for all audio encoders
package encode

// Encoder encodes float samples to a file format
type Encoder interface {
	// Encode appends samples to the encoded output
	Encode(samples []float64) error

	// Close finalizes headers and releases encoder resources
	Close() error
}
