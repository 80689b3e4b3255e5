package extract

import (
	"reflect"
	"testing"
)

func TestSpans(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   []string
	}{
		{
			name: "table rows",
			markup: `<html><body><table>
				<tr><td><p><span>x</span></p></td><td><p><span>c</span></p></td><td><p><span>y</span></p></td></tr>
				<tr><td><p><span>0</span></p></td><td><p><span>█</span></p></td><td><p><span>1</span></p></td></tr>
			</table></body></html>`,
			want: []string{"x", "c", "y", "0", "█", "1"},
		},
		{
			name: "spans outside rows are ignored",
			markup: `<p><span>title</span></p><table>
				<tr><td><span>a</span></td></tr></table><p><span>footer</span></p>`,
			want: []string{"a"},
		},
		{
			name:   "nested span text is concatenated",
			markup: `<table><tr><td><span>1<b>2</b><span>3</span></span></td></tr></table>`,
			want:   []string{"123", "3"},
		},
		{
			name:   "entities are decoded",
			markup: `<table><tr><td><span>&amp;</span><span>&nbsp;</span></td></tr></table>`,
			want:   []string{"&", "\u00a0"},
		},
		{
			name:   "multiple tables flatten",
			markup: `<table><tr><td><span>1</span></td></tr></table><table><tr><td><span>2</span></td></tr></table>`,
			want:   []string{"1", "2"},
		},
		{
			name:   "no table",
			markup: `<html><body><p>nothing here</p></body></html>`,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Spans(tt.markup)
			if err != nil {
				t.Fatalf("Spans: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Spans = %q, want %q", got, tt.want)
			}
		})
	}
}
