package report

import "github.com/xuri/excelize/v2"

const fontFamily = "Arial"

// styles holds the style ids of one workbook. Row styles are indexed by
// row parity for zebra striping.
type styles struct {
	title      int
	subtitle   int
	storeLabel int
	header     int
	totalLabel int
	total      int

	text     [2]int
	money    [2]int
	date     [2]int
	dateTime [2]int
}

var zebra = [2]string{"FFFFFF", "F2F2F2"}

func newStyles(f *excelize.File, headerColor string) (*styles, error) {
	var (
		st  styles
		err error
	)
	add := func(dst *int, s *excelize.Style) {
		if err != nil {
			return
		}
		*dst, err = f.NewStyle(s)
	}

	centered := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	add(&st.title, &excelize.Style{Font: &excelize.Font{Family: fontFamily, Size: 16, Bold: true}, Alignment: centered})
	add(&st.subtitle, &excelize.Style{Font: &excelize.Font{Family: fontFamily, Size: 10, Italic: true}, Alignment: centered})
	add(&st.storeLabel, &excelize.Style{Font: &excelize.Font{Family: fontFamily, Size: 12, Bold: true}, Alignment: centered})
	add(&st.header, &excelize.Style{
		Font:      &excelize.Font{Family: fontFamily, Size: 11, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    borders("000000", 1),
	})

	totalFill := excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFE699"}}
	add(&st.totalLabel, &excelize.Style{
		Font:      &excelize.Font{Family: fontFamily, Size: 11, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
	})
	money := moneyFormat
	add(&st.total, &excelize.Style{
		Font:         &excelize.Font{Family: fontFamily, Size: 11, Bold: true},
		Fill:         totalFill,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       doubleRule(),
		CustomNumFmt: &money,
	})

	date, dateTime := dateFormat, dateTimeFormat
	for i, color := range zebra {
		base := func(align string, numFmt *string) *excelize.Style {
			return &excelize.Style{
				Font:         &excelize.Font{Family: fontFamily, Size: 10},
				Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
				Alignment:    &excelize.Alignment{Horizontal: align, Vertical: "center"},
				Border:       borders("D3D3D3", 1),
				CustomNumFmt: numFmt,
			}
		}
		add(&st.text[i], base("left", nil))
		add(&st.money[i], base("right", &money))
		add(&st.date[i], base("right", &date))
		add(&st.dateTime[i], base("left", &dateTime))
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func borders(color string, style int) []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: color, Style: style},
		{Type: "top", Color: color, Style: style},
		{Type: "right", Color: color, Style: style},
		{Type: "bottom", Color: color, Style: style},
	}
}

func doubleRule() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 6},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 6},
	}
}
