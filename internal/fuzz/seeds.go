package fuzztests

import (
	"testing"
)

const maxFuzzInput = 64 << 10 // 64 KiB хватает на любую осмысленную пару

// addPairSeeds добавляет корпус: валидную пару и типовые поломки буфера.
func addPairSeeds(f *testing.F, pair func() (src, blob []byte)) {
	src, blob := pair()
	f.Add(src, blob)

	// Пустые входы и оборванный заголовок.
	f.Add([]byte{}, []byte{})
	f.Add(src, []byte("PRISM"))
	f.Add(src, blob[:len(blob)/2])

	// Неверная версия формата.
	bad := append([]byte(nil), blob...)
	bad[6] = 99
	f.Add(src, bad)

	// Мусор в хвосте.
	f.Add(src, append(append([]byte(nil), blob...), 0xFF))

	// Битый байт в середине.
	flip := append([]byte(nil), blob...)
	flip[len(flip)/2] ^= 0x20
	f.Add(src, flip)

	// Пара с пустым исходником: все спаны и константы мимо подложки.
	f.Add([]byte{}, blob)
}

func clampInput(b []byte) []byte {
	if len(b) > maxFuzzInput {
		b = b[:maxFuzzInput]
	}
	return append([]byte(nil), b...)
}
