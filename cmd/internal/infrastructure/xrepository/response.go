package xrepository

// Genericode download payload: a "spalten" header describing the columns and
// "daten" as row tuples in header order.
type listResponse struct {
	Columns []columnResponse `json:"spalten"`
	Data    [][]any          `json:"daten"`
}

type columnResponse struct {
	TechnicalName string `json:"spaltennameTechnisch"`
}

// Row maps a technical column name to its cell; null cells stay nil.
type Row map[string]*string

func (r Row) Get(name string) *string {
	return r[name]
}

type CodeList struct {
	Rows []Row
}

func (l *listResponse) toCodeList() *CodeList {
	rows := make([]Row, 0, len(l.Data))
	for _, tuple := range l.Data {
		row := Row{}
		for i, col := range l.Columns {
			if i >= len(tuple) {
				break
			}
			if s, ok := tuple[i].(string); ok {
				row[col.TechnicalName] = &s
			}
		}
		rows = append(rows, row)
	}
	return &CodeList{Rows: rows}
}
