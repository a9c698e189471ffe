package excel

import "github.com/xuri/excelize/v2"

// Number formats used on week sheets.
const (
	dateFormat    = "MM/dd/yyyy"
	weekdayFormat = "dddd"
	TimeFormat    = "hh:mm;@" // text entered over a time stays text
)

// styleCache creates each distinct cell format once per workbook, so every
// week sheet shares the same style IDs.
type styleCache struct {
	file *excelize.File
	ids  map[cellFormat]int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{file: f, ids: make(map[cellFormat]int)}
}

func (c *styleCache) id(format cellFormat) (int, error) {
	if id, ok := c.ids[format]; ok {
		return id, nil
	}

	id, err := c.file.NewStyle(format.style())
	if err != nil {
		return 0, err
	}

	c.ids[format] = id
	return id, nil
}
