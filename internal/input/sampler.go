package input

// Source reports the state of the first connected device. ok is false when
// no device is present; that is "no input this cycle", not an error.
type Source interface {
	Poll() (raw Raw, ok bool)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (Raw, bool)

// Poll implements Source.
func (f SourceFunc) Poll() (Raw, bool) {
	return f()
}

// Sampler reads a Source once per tick and normalizes the result.
type Sampler struct {
	src Source
}

// NewSampler returns a Sampler over src. A nil src never yields frames.
func NewSampler(src Source) *Sampler {
	return &Sampler{src: src}
}

// Sample returns a freshly allocated Frame for this tick, or ok=false when
// no device is connected.
func (s *Sampler) Sample() (Frame, bool) {
	if s == nil || s.src == nil {
		return Frame{}, false
	}
	raw, ok := s.src.Poll()
	if !ok {
		return Frame{}, false
	}
	return Normalize(raw), true
}
