package domain

// Row sampling bounds the payload submitted to the extraction service.
// The extraction model only needs representative structure, not every row,
// so large sheets are reduced to a lossy, order-preserving subsequence.
const (
	// MaxUnsampledRows is the largest sheet sent whole.
	MaxUnsampledRows = 100

	// sampleHeadRows is how many leading rows are always kept.
	sampleHeadRows = 20

	// sampleStride keeps every Nth row of the sheet body.
	sampleStride = 10

	// sampleTailRows is how many trailing rows are always kept.
	sampleTailRows = 10
)

// SampleSheet downsamples one sheet. Sheets at or under MaxUnsampledRows,
// and sheets already sampled, pass through unchanged apart from
// OriginalRowCount bookkeeping, which makes sampling idempotent.
func SampleSheet(s Sheet) Sheet {
	if s.OriginalRowCount == 0 {
		s.OriginalRowCount = len(s.Rows)
	}
	if s.WasSampled || len(s.Rows) <= MaxUnsampledRows {
		return s
	}

	n := len(s.Rows)
	sampled := make([][]string, 0, sampleHeadRows+sampleTailRows+(n-sampleHeadRows-sampleTailRows)/sampleStride+1)

	sampled = append(sampled, s.Rows[:sampleHeadRows]...)
	for i := sampleHeadRows; i < n-sampleTailRows; i += sampleStride {
		sampled = append(sampled, s.Rows[i])
	}
	sampled = append(sampled, s.Rows[n-sampleTailRows:]...)

	s.Rows = sampled
	s.WasSampled = true
	return s
}

// SampleDocument applies SampleSheet to every sheet of a tabular document.
// Binary documents pass through untouched.
func SampleDocument(doc SourceDocument) SourceDocument {
	tab, ok := doc.(*TabularDocument)
	if !ok {
		return doc
	}
	out := &TabularDocument{Name: tab.Name, Sheets: make([]Sheet, len(tab.Sheets))}
	for i := range tab.Sheets {
		out.Sheets[i] = SampleSheet(tab.Sheets[i])
	}
	return out
}
