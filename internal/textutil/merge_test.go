package textutil

import (
	"reflect"
	"testing"

	"github.com/nutrireco/go-reco-engine/model"
)

func TestSchema(t *testing.T) {
	rows := []model.Row{
		{"PRDLST_NM": "a", "BSSH_NM": "b"},
		{"PRDLST_NM": "c", "RAWMTRL_NM": "d"},
	}
	schema := Schema(rows)

	for _, col := range []string{"PRDLST_NM", "BSSH_NM", "RAWMTRL_NM"} {
		if _, ok := schema[col]; !ok {
			t.Errorf("schema missing column %s", col)
		}
	}
	if len(schema) != 3 {
		t.Errorf("schema should have 3 columns, got %d", len(schema))
	}
}

func TestNewMerger_NegotiatesColumns(t *testing.T) {
	schema := map[string]struct{}{"PRDLST_NM": {}, "RAWMTRL_NM": {}}
	candidates := []string{"PRDLST_NM", "PRDT_NM", "RAWMTRL_NM", "PRIMARY_FNCLTY"}

	m := NewMerger(candidates, schema)

	want := []string{"PRDLST_NM", "RAWMTRL_NM"}
	if !reflect.DeepEqual(m.Columns(), want) {
		t.Errorf("negotiated columns = %v, want %v", m.Columns(), want)
	}
}

func TestMergeRow(t *testing.T) {
	schema := map[string]struct{}{"PRDLST_NM": {}, "RAWMTRL_NM": {}, "PRIMARY_FNCLTY": {}}
	m := NewMerger([]string{"PRDLST_NM", "RAWMTRL_NM", "PRIMARY_FNCLTY"}, schema)

	tests := []struct {
		name string
		row  model.Row
		want string
	}{
		{
			name: "all columns present",
			row:  model.Row{"PRDLST_NM": "비타민C 츄어블", "RAWMTRL_NM": "Ascorbic Acid", "PRIMARY_FNCLTY": "항산화"},
			want: "비타민c 츄어블 ascorbic acid 항산화",
		},
		{
			name: "nil and missing values skipped",
			row:  model.Row{"PRDLST_NM": "홍삼정", "RAWMTRL_NM": nil},
			want: "홍삼정",
		},
		{
			name: "numeric value stringified",
			row:  model.Row{"PRDLST_NM": "오메가3", "RAWMTRL_NM": float64(500)},
			want: "오메가3 500",
		},
		{
			name: "empty row",
			row:  model.Row{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MergeRow(tt.row)
			if got != tt.want {
				t.Errorf("MergeRow() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergeRow_Deterministic(t *testing.T) {
	rows := []model.Row{
		{"PRDLST_NM": "프로바이오틱스", "RAWMTRL_NM": "Lactobacillus  plantarum"},
	}
	m := NewMerger([]string{"PRDLST_NM", "RAWMTRL_NM"}, Schema(rows))

	first := m.MergeRow(rows[0])
	for i := 0; i < 10; i++ {
		if got := m.MergeRow(rows[0]); got != first {
			t.Fatalf("MergeRow not deterministic: %q vs %q", got, first)
		}
	}
}
