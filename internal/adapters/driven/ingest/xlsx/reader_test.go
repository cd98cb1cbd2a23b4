package xlsx

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
)

const workbookXMLDoc = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"
          xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheets>
    <sheet name="Week 1" sheetId="1" r:id="rId1"/>
    <sheet name="Week 2" sheetId="2" r:id="rId2"/>
  </sheets>
</workbook>`

const relsXMLDoc = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet2.xml"/>
</Relationships>`

const sharedStringsXMLDoc = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="3" uniqueCount="3">
  <si><t>Exercise</t></si>
  <si><t>Bench Press</t></si>
  <si><r><t>Incline </t></r><r><t>Press</t></r></si>
</sst>`

const sheet1XMLDoc = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <sheetData>
    <row r="1">
      <c r="A1" t="s"><v>0</v></c>
      <c r="B1" t="inlineStr"><is><t>Sets</t></is></c>
    </row>
    <row r="2">
      <c r="A2" t="s"><v>1</v></c>
      <c r="C2"><v>3</v></c>
    </row>
    <row r="3">
      <c r="A3" t="s"><v>2</v></c>
    </row>
  </sheetData>
</worksheet>`

const sheet2XMLDoc = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <sheetData>
    <row r="1"><c r="A1"><v>42</v></c></row>
  </sheetData>
</worksheet>`

// writeWorkbook assembles a minimal .xlsx file on disk.
func writeWorkbook(t *testing.T, parts map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "program.xlsx")
	f, err := os.Create(path)
	require.NoError(t, err)

	w := zip.NewWriter(f)
	for name, content := range parts {
		part, err := w.Create(name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func defaultParts() map[string]string {
	return map[string]string{
		"xl/workbook.xml":            workbookXMLDoc,
		"xl/_rels/workbook.xml.rels": relsXMLDoc,
		"xl/sharedStrings.xml":       sharedStringsXMLDoc,
		"xl/worksheets/sheet1.xml":   sheet1XMLDoc,
		"xl/worksheets/sheet2.xml":   sheet2XMLDoc,
	}
}

func TestReader_Extensions(t *testing.T) {
	assert.Equal(t, []string{".xlsx", ".xlsm"}, New().Extensions())
}

func TestReader_ReadsWorkbook(t *testing.T) {
	path := writeWorkbook(t, defaultParts())

	doc, err := New().Read(path)
	require.NoError(t, err)

	tab, ok := doc.(*domain.TabularDocument)
	require.True(t, ok)
	assert.Equal(t, "program.xlsx", tab.DocumentName())
	assert.Equal(t, []string{"Week 1", "Week 2"}, tab.SheetNames())

	week1 := tab.Sheets[0]
	require.Len(t, week1.Rows, 3)
	assert.Equal(t, 3, week1.OriginalRowCount)
	assert.False(t, week1.WasSampled)

	// Shared strings, inline strings, and numeric cells.
	assert.Equal(t, []string{"Exercise", "Sets"}, week1.Rows[0])
	// A skipped column pads with an empty cell.
	assert.Equal(t, []string{"Bench Press", "", "3"}, week1.Rows[1])
	// Rich-text shared strings concatenate their runs.
	assert.Equal(t, []string{"Incline Press"}, week1.Rows[2])

	week2 := tab.Sheets[1]
	require.Len(t, week2.Rows, 1)
	assert.Equal(t, []string{"42"}, week2.Rows[0])
}

func TestReader_NoSharedStrings(t *testing.T) {
	parts := defaultParts()
	delete(parts, "xl/sharedStrings.xml")
	parts["xl/worksheets/sheet1.xml"] = sheet2XMLDoc
	parts["xl/worksheets/sheet2.xml"] = sheet2XMLDoc
	path := writeWorkbook(t, parts)

	doc, err := New().Read(path)
	require.NoError(t, err)

	tab := doc.(*domain.TabularDocument)
	assert.Equal(t, []string{"42"}, tab.Sheets[0].Rows[0])
}

func TestReader_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0600))

	_, err := New().Read(path)

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReader_MissingWorkbookPart(t *testing.T) {
	parts := defaultParts()
	delete(parts, "xl/workbook.xml")
	path := writeWorkbook(t, parts)

	_, err := New().Read(path)

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReader_MissingFile(t *testing.T) {
	_, err := New().Read(filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Error(t, err)
}
