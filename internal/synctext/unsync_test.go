package synctext

import "testing"

func TestResyncRemovesEscapedZero(t *testing.T) {
	in := []byte{0x12, 0xff, 0x00, 0xe0, 0x34}
	want := []byte{0x12, 0xff, 0xe0, 0x34}

	got := Resync(in)
	if string(got) != string(want) {
		t.Fatalf("Resync(%x) = %x, want %x", in, got, want)
	}
}

func TestResyncIdempotentOnCleanData(t *testing.T) {
	in := []byte{0x12, 0xff, 0xe0, 0x34}

	once := Resync(in)
	twice := Resync(once)

	if string(once) != string(twice) {
		t.Fatalf("Resync not idempotent: once=%x twice=%x", once, twice)
	}
	if string(once) != string(in) {
		t.Fatalf("Resync changed already-clean data: %x -> %x", in, once)
	}
}

func TestResyncTrailingFF(t *testing.T) {
	in := []byte{0x01, 0xff}
	got := Resync(in)
	if string(got) != string(in) {
		t.Fatalf("Resync(%x) = %x, want unchanged", in, got)
	}
}

func TestResyncDoesNotMutateInput(t *testing.T) {
	in := []byte{0xff, 0x00}
	cp := append([]byte(nil), in...)
	_ = Resync(in)
	if string(in) != string(cp) {
		t.Fatal("Resync mutated its input")
	}
}

func TestDecodeSynchSafe(t *testing.T) {
	cases := []struct {
		in   []byte
		want uint64
	}{
		{[]byte{0x00, 0x00, 0x00, 0x00}, 0},
		{[]byte{0x00, 0x00, 0x02, 0x01}, 257},
		{[]byte{0x7f, 0x7f, 0x7f, 0x7f}, 0x0fffffff},
	}
	for _, c := range cases {
		if got := DecodeSynchSafe(c.in); got != c.want {
			t.Errorf("DecodeSynchSafe(%x) = %d, want %d", c.in, got, c.want)
		}
	}
}
