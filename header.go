package seiscube

// HeaderField is the 1-based byte offset of a word in a 240-byte SEG-Y trace header.
type HeaderField int

// Commonly populated trace header words.
const (
	HeaderTraceSequenceLine HeaderField = 1
	HeaderTraceSequenceFile HeaderField = 5
	HeaderFieldRecord       HeaderField = 9
	HeaderTraceNumber       HeaderField = 13
	HeaderCDP               HeaderField = 21
	HeaderOffset            HeaderField = 37
	HeaderScalarCoord       HeaderField = 71
	HeaderSourceX           HeaderField = 73
	HeaderSourceY           HeaderField = 77
	HeaderSampleCount       HeaderField = 115
	HeaderSampleInterval    HeaderField = 117
	HeaderCDPX              HeaderField = 181
	HeaderCDPY              HeaderField = 185
	HeaderInline            HeaderField = 189
	HeaderCrossline         HeaderField = 193
)

// TraceHeader holds the decoded words of one trace header.
// Words absent from the map are zero.
type TraceHeader map[HeaderField]int32

// Inline returns the inline number word.
func (h TraceHeader) Inline() int32 { return h[HeaderInline] }

// Crossline returns the crossline number word.
func (h TraceHeader) Crossline() int32 { return h[HeaderCrossline] }

// CDPX returns the ensemble X coordinate word.
func (h TraceHeader) CDPX() int32 { return h[HeaderCDPX] }

// CDPY returns the ensemble Y coordinate word.
func (h TraceHeader) CDPY() int32 { return h[HeaderCDPY] }

// SampleCount returns the number of samples word.
func (h TraceHeader) SampleCount() int32 { return h[HeaderSampleCount] }

// SampleInterval returns the sample interval word in microseconds.
func (h TraceHeader) SampleInterval() int32 { return h[HeaderSampleInterval] }
