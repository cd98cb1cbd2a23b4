package domain

// SourceDocument is a source workout document reduced to an explicit,
// typed representation at the ingestion boundary. Exactly two shapes
// exist: tabular workbooks and opaque binary payloads.
type SourceDocument interface {
	// DocumentName is the human-readable source name (usually a filename).
	DocumentName() string

	sourceDocument()
}

// Sheet is one worksheet reduced to ordered rows of ordered cell values.
// Row 0 is conventionally the header row.
type Sheet struct {
	// Name is the worksheet name.
	Name string `json:"name"`

	// Rows holds the (possibly sampled) cell values in original order.
	Rows [][]string `json:"data"`

	// OriginalRowCount is the row count before any sampling.
	OriginalRowCount int `json:"originalRowCount"`

	// WasSampled reports whether Rows is a lossy subsequence of the
	// original sheet.
	WasSampled bool `json:"wasSampled"`
}

// TabularDocument is a workbook: named sheets in workbook order.
type TabularDocument struct {
	// Name is the source file name.
	Name string `json:"-"`

	// Sheets holds the workbook's sheets in order.
	Sheets []Sheet `json:"sheets"`
}

// DocumentName implements SourceDocument.
func (d *TabularDocument) DocumentName() string { return d.Name }

func (d *TabularDocument) sourceDocument() {}

// SheetNames returns the sheet names in workbook order.
func (d *TabularDocument) SheetNames() []string {
	names := make([]string, len(d.Sheets))
	for i := range d.Sheets {
		names[i] = d.Sheets[i].Name
	}
	return names
}

// WasSampled reports whether any sheet was downsampled.
func (d *TabularDocument) WasSampled() bool {
	for i := range d.Sheets {
		if d.Sheets[i].WasSampled {
			return true
		}
	}
	return false
}

// BinaryDocument is an opaque document payload (e.g. a PDF) submitted to
// the extraction service as-is.
type BinaryDocument struct {
	// Name is the source file name.
	Name string

	// MIMEType is the content type (e.g. "application/pdf").
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}

// DocumentName implements SourceDocument.
func (d *BinaryDocument) DocumentName() string { return d.Name }

func (d *BinaryDocument) sourceDocument() {}
