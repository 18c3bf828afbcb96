package raster

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testCursor(data []byte) (*Decoder, *blockCursor) {
	d := NewDecoder(bytes.NewReader(data))
	return d, &blockCursor{d: d, remaining: len(data)}
}

func TestReadOverflow(t *testing.T) {
	tests := []struct {
		data []byte
		want int
	}{
		{[]byte{0}, 0},
		{[]byte{10}, 10},
		{[]byte{254}, 254},
		{[]byte{255, 0}, 255},
		{[]byte{255, 255, 10}, 520},
	}
	for _, tt := range tests {
		_, cur := testCursor(tt.data)
		n, err := readOverflow(cur)
		if err != nil {
			t.Fatalf("readOverflow(% x): %v", tt.data, err)
		}
		if n != tt.want {
			t.Errorf("readOverflow(% x) = %d, want %d", tt.data, n, tt.want)
		}
	}
}

func TestRepeatEdit(t *testing.T) {
	// sign bit set, offset 0, count bits 0 -> fill 2 bytes
	d, cur := testCursor([]byte{0x80, 0xaa})
	if err := d.readEdit(cur); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0xaa, 0xaa}, d.line); diff != "" {
		t.Errorf("line mismatch (-want +got):\n%s", diff)
	}
}

func TestRepeatEditOffset(t *testing.T) {
	d, cur := testCursor([]byte{0xa0, 0xff})
	d.line = []byte{0x11, 0x22, 0x33}
	if err := d.readEdit(cur); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0x11, 0xff, 0xff}, d.line); diff != "" {
		t.Errorf("line mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstituteEdit(t *testing.T) {
	// sign bit clear, offset 0, count bits 0 -> 1 literal byte
	d, cur := testCursor([]byte{0x00, 0x7f})
	if err := d.readEdit(cur); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0x7f}, d.line); diff != "" {
		t.Errorf("line mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstituteEditOverflowCount(t *testing.T) {
	// count bits saturated at 7: 7 + overflow 3 + 1 = 11 literals
	data := []byte{0x07, 3}
	literals := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	d, cur := testCursor(append(data, literals...))
	if err := d.readEdit(cur); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(literals, d.line); diff != "" {
		t.Errorf("line mismatch (-want +got):\n%s", diff)
	}
}

func TestBlankRowSentinel(t *testing.T) {
	d, cur := testCursor([]byte{255})
	d.line = []byte{1, 2, 3}
	p := &Page{}
	if err := d.readRow(cur, p); err != nil {
		t.Fatal(err)
	}
	if len(d.line) != 0 {
		t.Errorf("seed line not cleared: % x", d.line)
	}
	if p.Height() != 1 || len(p.Row(0)) != 0 {
		t.Errorf("expected one empty row, got %v", p.rows)
	}
}

func TestSeedRowCarryOver(t *testing.T) {
	// zero edits re-emit the seed row unchanged
	d, cur := testCursor([]byte{0})
	d.line = []byte{0x11, 0x22, 0x33}
	p := &Page{}
	if err := d.readRow(cur, p); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0x11, 0x22, 0x33}, p.Row(0)); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
	// the page owns a copy, not the seed buffer
	d.line[0] = 0xee
	if p.Row(0)[0] != 0x11 {
		t.Error("page row aliases the seed buffer")
	}
}

func TestLineOverflow(t *testing.T) {
	// repeat edit with saturated offset; overflow bytes push the end
	// position past MaxLineSize
	data := []byte{0xe0}
	for i := 0; i < 7; i++ {
		data = append(data, 255)
	}
	data = append(data, 245, 0xaa) // offset 3+2030, fill byte
	d, cur := testCursor(data)
	if err := d.readEdit(cur); err != ErrLineOverflow {
		t.Errorf("got %v, want ErrLineOverflow", err)
	}
}

func TestBlockBudget(t *testing.T) {
	// substitute wants 4 literals but only 2 remain in the block
	d, cur := testCursor([]byte{0x03, 1, 2, 3, 4})
	cur.remaining = 3
	if err := d.readEdit(cur); err != ErrReadPastBlockEnd {
		t.Errorf("got %v, want ErrReadPastBlockEnd", err)
	}
}

func TestReadBlock(t *testing.T) {
	// two rows: a repeat edit, then an empty record re-emitting it
	data := []byte{0, 2, 1, 0x81, 0xaa, 0}
	d, cur := testCursor(data)
	p := &Page{}
	if err := d.readBlock(cur, p); err != nil {
		t.Fatal(err)
	}
	want := [][]byte{
		{0xaa, 0xaa, 0xaa},
		{0xaa, 0xaa, 0xaa},
	}
	if diff := cmp.Diff(want, p.rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}
