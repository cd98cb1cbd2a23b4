// Package xlsx reads OOXML workbooks into the typed tabular document
// representation: named sheets, ordered rows, ordered cell values.
package xlsx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
	"github.com/custodia-labs/repsync-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// Reader handles .xlsx/.xlsm workbooks.
type Reader struct{}

// New creates a new workbook reader.
func New() *Reader {
	return &Reader{}
}

// Extensions returns the file extensions this reader handles.
func (r *Reader) Extensions() []string {
	return []string{".xlsx", ".xlsm"}
}

// workbookXML is the sheet index within xl/workbook.xml.
type workbookXML struct {
	Sheets struct {
		Sheet []struct {
			Name string `xml:"name,attr"`
			RID  string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
		} `xml:"sheet"`
	} `xml:"sheets"`
}

// relationshipsXML maps relationship IDs to part targets.
type relationshipsXML struct {
	Relationship []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// sstXML is the shared string table.
type sstXML struct {
	SI []struct {
		T    []string `xml:"t"`
		Runs []struct {
			T string `xml:"t"`
		} `xml:"r"`
	} `xml:"si"`
}

// worksheetXML is one sheet's cell grid.
type worksheetXML struct {
	SheetData struct {
		Rows []struct {
			Cells []struct {
				Ref    string `xml:"r,attr"`
				Type   string `xml:"t,attr"`
				Value  string `xml:"v"`
				Inline struct {
					T []string `xml:"t"`
				} `xml:"is"`
			} `xml:"c"`
		} `xml:"row"`
	} `xml:"sheetData"`
}

// Read loads a workbook file and reduces every sheet to rows of cell
// values in workbook order.
func (r *Reader) Read(filePath string) (domain.SourceDocument, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}

	archive, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a valid workbook", domain.ErrInvalidInput)
	}

	workbook, err := parsePart[workbookXML](archive, "xl/workbook.xml")
	if err != nil {
		return nil, err
	}
	rels, err := parsePart[relationshipsXML](archive, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil, err
	}
	shared := sharedStrings(archive)

	targets := make(map[string]string, len(rels.Relationship))
	for _, rel := range rels.Relationship {
		targets[rel.ID] = rel.Target
	}

	doc := &domain.TabularDocument{Name: path.Base(filePath)}
	for _, sheet := range workbook.Sheets.Sheet {
		target, ok := targets[sheet.RID]
		if !ok {
			continue
		}
		rows, err := readSheet(archive, target, shared)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
		doc.Sheets = append(doc.Sheets, domain.Sheet{
			Name:             sheet.Name,
			Rows:             rows,
			OriginalRowCount: len(rows),
		})
	}

	if len(doc.Sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrInvalidInput)
	}
	return doc, nil
}

// readSheet parses one worksheet part into rows of cell values.
func readSheet(archive *zip.Reader, target string, shared []string) ([][]string, error) {
	// Targets are relative to xl/ unless already absolute.
	name := target
	if !strings.HasPrefix(name, "xl/") {
		name = path.Join("xl", name)
	}

	sheet, err := parsePart[worksheetXML](archive, name)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(sheet.SheetData.Rows))
	for _, row := range sheet.SheetData.Rows {
		var cells []string
		for _, cell := range row.Cells {
			idx := columnIndex(cell.Ref)
			for len(cells) < idx {
				cells = append(cells, "")
			}
			cells = append(cells, cellValue(cell.Type, cell.Value, cell.Inline.T, shared))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// cellValue resolves a cell's display value from its storage type.
func cellValue(cellType, value string, inline []string, shared []string) string {
	switch cellType {
	case "s":
		idx, err := strconv.Atoi(value)
		if err != nil || idx < 0 || idx >= len(shared) {
			return ""
		}
		return shared[idx]
	case "inlineStr":
		return strings.Join(inline, "")
	default:
		return value
	}
}

// columnIndex converts a cell reference ("BC12") to a 0-based column.
func columnIndex(ref string) int {
	col := 0
	for _, r := range ref {
		if r < 'A' || r > 'Z' {
			break
		}
		col = col*26 + int(r-'A') + 1
	}
	if col == 0 {
		return 0
	}
	return col - 1
}

// sharedStrings loads the shared string table. Workbooks without one are
// valid; cells then carry their values inline.
func sharedStrings(archive *zip.Reader) []string {
	sst, err := parsePart[sstXML](archive, "xl/sharedStrings.xml")
	if err != nil {
		return nil
	}

	strs := make([]string, 0, len(sst.SI))
	for _, si := range sst.SI {
		var b strings.Builder
		for _, t := range si.T {
			b.WriteString(t)
		}
		for _, run := range si.Runs {
			b.WriteString(run.T)
		}
		strs = append(strs, b.String())
	}
	return strs
}

// parsePart unmarshals one named part of the archive.
func parsePart[T any](archive *zip.Reader, name string) (*T, error) {
	file, err := archive.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: missing part %s", domain.ErrInvalidInput, name)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read part %s: %w", name, err)
	}

	var parsed T
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed part %s", domain.ErrInvalidInput, name)
	}
	return &parsed, nil
}
