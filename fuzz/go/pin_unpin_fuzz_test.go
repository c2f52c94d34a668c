package gofuzz

import (
	"os"
	"testing"
)

func FuzzPinUnpin(f *testing.F) {
	// 1 = pin, 0 = unpin
	f.Add([]byte{1, 1, 0, 0}, uint8(3))
	f.Add([]byte{1, 0, 1, 0}, uint8(5))
	f.Add([]byte{1, 1, 1, 0}, uint8(1))
	f.Add([]byte{0, 1, 0, 1}, uint8(4))

	f.Fuzz(func(t *testing.T, ops []byte, repeat uint8) {
		if len(ops) > 64 {
			ops = ops[:64]
		}
		repeat = repeat%8 + 1

		vm := newVM(t)
		wasm, err := os.ReadFile(VERIFIER_WASM)
		if err != nil {
			t.Skip("Could not read test WASM file")
		}
		checksum, err := vm.StoreCode(wasm)
		if err != nil {
			t.Fatal(err)
		}

		pinned := false
		for r := uint8(0); r < repeat; r++ {
			for _, op := range ops {
				if op%2 == 1 {
					if err := vm.Pin(checksum); err != nil {
						t.Fatalf("pin: %v", err)
					}
					pinned = true
				} else {
					vm.Unpin(checksum)
					pinned = false
				}
			}
		}

		// Pins do not nest: the last operation decides.
		err = vm.RemoveCode(checksum)
		if pinned && err == nil {
			t.Fatal("removed pinned code")
		}
		if !pinned && err != nil {
			t.Fatalf("remove unpinned code: %v", err)
		}
	})
}
