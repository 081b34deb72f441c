package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmacedo/pegada/internal/footprint"
)

// TestReportTitle tests title composition from the global parameters.
func TestReportTitle(t *testing.T) {
	tests := []struct {
		name   string
		params footprint.Parameters
		want   string
	}{
		{
			name:   "bare title",
			params: footprint.Parameters{},
			want:   "Pegada ecológica",
		},
		{
			name:   "with unit name",
			params: footprint.Parameters{UnitName: "Campus Central"},
			want:   "Pegada ecológica — Campus Central",
		},
		{
			name:   "with unit name and base year",
			params: footprint.Parameters{UnitName: "Campus Central", BaseYear: "2026"},
			want:   "Pegada ecológica — Campus Central (2026)",
		},
		{
			name:   "base year only",
			params: footprint.Parameters{BaseYear: "2026"},
			want:   "Pegada ecológica (2026)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reportTitle(tt.params))
		})
	}
}

// TestRenderReportPlain tests the plain (pipe-friendly) report output.
func TestRenderReportPlain(t *testing.T) {
	session := footprint.DefaultSession()
	cats := session.Categories()
	require.NoError(t, session.UpdateField(cats[0].ID, footprint.FieldConsumption, "100"))

	var buf strings.Builder
	renderReport(&buf, session, false)
	out := buf.String()

	assert.Contains(t, out, "Pegada ecológica")
	assert.Contains(t, out, "CATEGORIA")
	assert.Contains(t, out, cats[0].Name)
	assert.Contains(t, out, "Emissão total")
	assert.Contains(t, out, "Pegada total")
	assert.Contains(t, out, "Contribuições")
	assert.Contains(t, out, "Informe a população")
	// Plain output carries no ANSI escapes.
	assert.NotContains(t, out, "\x1b[")
}

// TestRenderReportPerCapita tests the per-capita line when population is set.
func TestRenderReportPerCapita(t *testing.T) {
	session := footprint.DefaultSession()
	cats := session.Categories()
	require.NoError(t, session.UpdateField(cats[0].ID, footprint.FieldConsumption, "100"))

	params := session.Params()
	params.Population = "50"
	session.SetParams(params)

	var buf strings.Builder
	renderReport(&buf, session, false)
	out := buf.String()

	assert.Contains(t, out, "Pegada per capita")
	assert.NotContains(t, out, "Informe a população")
	assert.Contains(t, out, "gha/pessoa/ano")
}

// TestRenderReportWarnings tests the invalid-FE warning paragraph.
func TestRenderReportWarnings(t *testing.T) {
	session := footprint.DefaultSession()
	cat := session.AddCategory("Categoria sem fator")
	require.NoError(t, session.UpdateField(cat.ID, footprint.FieldConsumption, "10"))

	var buf strings.Builder
	renderReport(&buf, session, false)

	assert.Contains(t, buf.String(), "Categoria sem fator")
	assert.Contains(t, buf.String(), "FE inválido ou vazio")
}

// TestRenderBar tests bar sizing at the extremes.
func TestRenderBar(t *testing.T) {
	tests := []struct {
		name       string
		percent    float64
		wantFilled int
	}{
		{"full", 100, barWidth},
		{"over full clamps", 150, barWidth},
		{"half", 50, barWidth / 2},
		{"tiny keeps one cell", 0.1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := renderBar(tt.percent, false)
			assert.Equal(t, tt.wantFilled, strings.Count(bar, "█"))
			assert.Equal(t, barWidth-tt.wantFilled, strings.Count(bar, "░"))
		})
	}
}

// TestBlankDash tests the empty-cell placeholder.
func TestBlankDash(t *testing.T) {
	assert.Equal(t, "—", blankDash(""))
	assert.Equal(t, "—", blankDash("   "))
	assert.Equal(t, "1.234,5", blankDash("1.234,5"))
}
