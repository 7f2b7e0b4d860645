package equations

import (
	"errors"
	"strings"
	"testing"

	"github.com/zaki1905/kirchhoff/internal/circuit"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  circuit.Equation
	}{
		{"junction rearranged", "I1 = I2 + I3", circuit.Equation{I1: 1, I2: -1, I3: -1}},
		{"junction explicit", "I1 - I2 - I3 = 0", circuit.Equation{I1: 1, I2: -1, I3: -1}},
		{"left loop numeric", "10 - 100*I1 - 300*I3 = 0", circuit.Equation{I1: -100, I3: -300, Const: 10}},
		{"implicit multiplication", "200 I2 - 300 I3 = 5", circuit.Equation{I2: 200, I3: -300, Const: -5}},
		{"tight spacing", "2I1-2I2-2I3=0", circuit.Equation{I1: 2, I2: -2, I3: -2}},
		{"lowercase with underscore", "i_1 = i_2 + i_3", circuit.Equation{I1: 1, I2: -1, I3: -1}},
		{"unicode minus", "−I1 + I2 + I3 = 0", circuit.Equation{I1: -1, I2: 1, I3: 1}},
		{"multiplication dot", "10 − 100·I1 − 300·I3 = 0", circuit.Equation{I1: -100, I3: -300, Const: 10}},
		{"decimal coefficients", "0.5*I1 = 0.25", circuit.Equation{I1: 0.5, Const: -0.25}},
		{"terms on both sides", "100*I1 + 300*I3 = 10", circuit.Equation{I1: 100, I3: 300, Const: -10}},
		{"repeated variable folds", "I1 + I1 - I2 = 0", circuit.Equation{I1: 2, I2: -1}},
		{"unary minus after operator", "I1 + -I2 = I3", circuit.Equation{I1: 1, I2: -1, I3: -1}},
		{"zero equation", "0 = 0", circuit.Equation{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty", "", "empty equation"},
		{"blank", "   ", "empty equation"},
		{"missing equals", "I1 - I2 - I3", "missing '='"},
		{"double equals", "I1 = I2 = I3", "more than one '='"},
		{"unknown current", "I4 = 0", "unknown variable"},
		{"symbolic values", "V1 - R1*I1 = 0", "unknown variable"},
		{"exponent", "I1^2 = 4", "unexpected character"},
		{"product of currents", "I1*I2 = 0", "coefficient before the current"},
		{"adjacent numbers", "3 4 = 0", "missing operator"},
		{"number after current", "I1 3 = 0", "missing operator"},
		{"operator before equals", "I1 + = 3", "dangling operator"},
		{"trailing operator", "I1 = 3 +", "dangling operator"},
		{"missing right side", "I1 =", "missing right-hand side"},
		{"missing left side", "= 3", "missing left-hand side"},
		{"lone equals", "=", "missing left-hand side"},
		{"star into number", "2*3 = I1", "expected I1, I2, or I3"},
		{"malformed number", "1.2.3 = 0", "bad number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tt.input)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error = %T, want *ParseError", tt.input, err)
			}
			if !strings.Contains(pe.Msg, tt.wantMsg) {
				t.Errorf("Parse(%q) message = %q, want it to contain %q", tt.input, pe.Msg, tt.wantMsg)
			}
			if pe.Input != tt.input {
				t.Errorf("ParseError.Input = %q, want %q", pe.Input, tt.input)
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("I1 + I4 = 0")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if pe.Pos != 5 {
		t.Errorf("ParseError.Pos = %d, want 5", pe.Pos)
	}
}
