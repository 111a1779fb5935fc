package render

import (
	"github.com/xuri/excelize/v2"
)

const SheetName = "Monthly Invoice"

// numFmtTwoDecimals is the built-in "0.00" number format.
const numFmtTwoDecimals = 2

func RenderXLSX(table Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	numberStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return nil, err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		NumFmt: numFmtTwoDecimals,
		Font:   &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", "D1", headerStyle); err != nil {
		return nil, err
	}

	row := 2
	for _, r := range table.Rows {
		values := []interface{}{
			r.Name,
			r.TotalLitres.InexactFloat64(),
			r.Rate.InexactFloat64(),
			r.Amount.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetName, cell("A", row), &values); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(SheetName, cell("B", row), cell("D", row), numberStyle); err != nil {
			return nil, err
		}
		row++
	}

	if err := f.SetCellValue(SheetName, cell("A", row), GrandTotalLabel); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(SheetName, cell("D", row), table.GrandTotal.InexactFloat64()); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, cell("A", row), cell("D", row), totalStyle); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(SheetName, "A", "A", nameColumnWidth(table)); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "B", "D", 22); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cell(column string, row int) string {
	name, _ := excelize.JoinCellName(column, row)
	return name
}

// nameColumnWidth fits the longest name, capped at 50 characters.
func nameColumnWidth(table Table) float64 {
	longest := len(Header[0])
	for _, r := range table.Rows {
		longest = max(longest, len([]rune(r.Name)))
	}
	return float64(min(longest+2, 50))
}
