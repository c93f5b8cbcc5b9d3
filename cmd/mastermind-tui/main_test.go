package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/render"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/state"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testModel() model {
	return model{
		st:    state.New(),
		sizer: render.SizerInput{AccountSize: 10000, RiskPercent: 2},
	}
}

func TestHyphenatedTickerInput(t *testing.T) {
	m := testModel()
	for _, s := range []string{"b", "r", "k", "-", "b"} {
		next, _ := m.Update(keyMsg(s))
		m = next.(model)
	}
	if m.input != "BRK-B" {
		t.Fatalf("input = %q, want BRK-B", m.input)
	}
	if m.sizer.RiskPercent != 2 {
		t.Errorf("risk percent = %v, typing must not adjust it", m.sizer.RiskPercent)
	}
}

func TestRiskKeysApplyOnlyWithEmptyInput(t *testing.T) {
	m := testModel()

	next, _ := m.Update(keyMsg("-"))
	m = next.(model)
	if m.sizer.RiskPercent != 1.5 {
		t.Errorf("risk percent after - = %v, want 1.5", m.sizer.RiskPercent)
	}
	next, _ = m.Update(keyMsg("+"))
	m = next.(model)
	if m.sizer.RiskPercent != 2 {
		t.Errorf("risk percent after + = %v, want 2", m.sizer.RiskPercent)
	}

	next, _ = m.Update(keyMsg("a"))
	m = next.(model)
	next, _ = m.Update(keyMsg("+"))
	m = next.(model)
	if m.sizer.RiskPercent != 2 {
		t.Errorf("risk percent changed to %v while typing", m.sizer.RiskPercent)
	}
	if m.input != "A" {
		t.Errorf("input = %q, want A", m.input)
	}
}
