package problems

import (
	"fmt"

	"github.com/zaki1905/kirchhoff/internal/circuit"
)

// defaultTable is the built-in table, set by init.
var defaultTable *Table

func init() {
	t, err := New(defaultSets)
	if err != nil {
		panic(fmt.Sprintf("built-in problem table: %v", err))
	}
	if err := t.Verify(); err != nil {
		panic(fmt.Sprintf("built-in problem table: %v", err))
	}
	defaultTable = t
}

func set(id int, v1, v2, r1, r2, r3 float64) Set {
	return Set{ID: id, Params: circuit.Parameters{V1: v1, V2: v2, R1: r1, R2: r2, R3: r3}}
}

// defaultSets lists the assigned problems, one per worksheet number:
// set(ID, V1, V2, R1, R2, R3) with voltages in volts and resistances in ohms.
var defaultSets = []Set{
	set(1, 10, 5, 100, 200, 300),
	set(2, 12, 6, 150, 330, 220),
	set(3, 9, 3, 120, 180, 270),
	set(4, 15, 9, 220, 150, 330),
	set(5, 5, 12, 180, 390, 120),
	set(6, 24, 12, 470, 330, 150),
	set(7, 6, 9, 330, 100, 220),
	set(8, 18, 6, 270, 220, 390),
	set(9, 12, 12, 150, 150, 150),
	set(10, 20, 10, 390, 270, 100),
	set(11, 8, 4, 100, 330, 180),
	set(12, 16, 8, 220, 470, 270),
	set(13, 10, 15, 330, 120, 390),
	set(14, 14, 7, 180, 270, 330),
	set(15, 22, 11, 560, 390, 220),
	set(16, 7, 14, 120, 220, 470),
	set(17, 9, 6, 270, 390, 150),
	set(18, 11, 5, 150, 100, 330),
	set(19, 13, 8, 390, 180, 100),
	set(20, 19, 9, 470, 560, 330),
	set(21, 6, 3, 100, 120, 150),
	set(22, 17, 10, 330, 270, 560),
	set(23, 21, 7, 220, 330, 390),
	set(24, 4, 8, 150, 470, 270),
	set(25, 23, 11, 390, 100, 180),
	set(26, 10, 20, 270, 560, 120),
	set(27, 15, 5, 560, 220, 330),
	set(28, 12, 9, 120, 390, 470),
	set(29, 18, 12, 330, 150, 270),
	set(30, 8, 16, 470, 120, 220),
	set(31, 24, 13, 560, 470, 390),
	set(32, 5, 10, 220, 180, 100),
	set(33, 14, 21, 180, 560, 330),
	set(34, 20, 6, 100, 270, 390),
	set(35, 9, 18, 390, 330, 560),
	set(36, 16, 4, 270, 100, 120),
	set(37, 11, 22, 470, 180, 560),
	set(38, 13, 24, 150, 390, 180),
	set(39, 24, 8, 330, 560, 470),
	set(40, 7, 15, 560, 150, 100),
}
