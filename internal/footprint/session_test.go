package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionAddCategory(t *testing.T) {
	s := DefaultSession()
	before := len(s.Categories())

	cat := s.AddCategory("Viagens aéreas")

	assert.Len(t, s.Categories(), before+1)
	assert.True(t, cat.Custom)
	assert.True(t, cat.Enabled)
	assert.Equal(t, "Viagens aéreas", cat.Name)
	assert.NotEmpty(t, cat.ID)

	unnamed := s.AddCategory("   ")
	assert.Equal(t, "Nova categoria", unnamed.Name)
}

func TestSessionRemoveCategory(t *testing.T) {
	s := DefaultSession()
	builtin := s.Categories()[0]
	custom := s.AddCategory("Personalizada")
	after := s.AddCategory("Depois")

	err := s.RemoveCategory(builtin.ID)
	assert.ErrorIs(t, err, ErrBuiltinCategory)

	err = s.RemoveCategory("does-not-exist")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	require.NoError(t, s.RemoveCategory(custom.ID))
	_, found := s.Find(custom.ID)
	assert.False(t, found)

	// Order of the remaining records is preserved.
	cats := s.Categories()
	assert.Equal(t, builtin.ID, cats[0].ID)
	assert.Equal(t, after.ID, cats[len(cats)-1].ID)
}

func TestSessionUpdateField(t *testing.T) {
	s := DefaultSession()
	id := s.Categories()[0].ID

	require.NoError(t, s.UpdateField(id, FieldConsumption, "1.500,25"))
	require.NoError(t, s.UpdateField(id, FieldFE, "0,9"))
	require.NoError(t, s.UpdateField(id, FieldName, "Energia (campus)"))

	cat, ok := s.Find(id)
	require.True(t, ok)
	assert.Equal(t, "1.500,25", cat.Consumption, "raw text is preserved")
	assert.Equal(t, "0,9", cat.FE)
	assert.Equal(t, "Energia (campus)", cat.Name)

	// Blanked display fields fall back to repair defaults.
	require.NoError(t, s.UpdateField(id, FieldName, "   "))
	cat, _ = s.Find(id)
	assert.Equal(t, "Categoria sem nome", cat.Name)

	assert.ErrorIs(t, s.UpdateField(id, "cor", "azul"), ErrUnknownField)
	assert.ErrorIs(t, s.UpdateField("nope", FieldFE, "1"), ErrUnknownCategory)
}

func TestSessionUpdateUsefulLife(t *testing.T) {
	s := DefaultSession()
	cat := s.AddCategory("Frota própria")

	require.NoError(t, s.UpdateField(cat.ID, FieldHasUsefulLife, "true"))
	got, _ := s.Find(cat.ID)
	assert.True(t, got.HasUsefulLife)
	assert.Equal(t, DefaultLifeSpan, got.LifeSpan, "enabling amortization seeds the default lifespan")

	require.NoError(t, s.UpdateField(cat.ID, FieldLifeSpan, "25"))
	got, _ = s.Find(cat.ID)
	assert.Equal(t, "25", got.LifeSpan)
}

func TestSessionResetConsumption(t *testing.T) {
	s := DefaultSession()
	id := s.Categories()[0].ID
	require.NoError(t, s.UpdateField(id, FieldConsumption, "42"))
	require.NoError(t, s.SetEnabled(id, false))
	custom := s.AddCategory("Minha categoria")

	s.ResetConsumption()

	for _, cat := range s.Categories() {
		assert.Empty(t, cat.Consumption)
		assert.True(t, cat.Enabled)
	}
	_, found := s.Find(custom.ID)
	assert.True(t, found, "reset keeps custom categories")
}

func TestSessionRecomputeIsIdempotent(t *testing.T) {
	s := DefaultSession()
	require.NoError(t, s.UpdateField(s.Categories()[0].ID, FieldConsumption, "100"))

	first := s.Compute()
	second := s.Compute()

	assert.Equal(t, first, second)
}

func TestSessionFindByName(t *testing.T) {
	s := DefaultSession()

	cat, ok := s.FindByName("agua")
	require.True(t, ok)
	assert.Equal(t, "Água", cat.Name)

	_, ok = s.FindByName("inexistente")
	assert.False(t, ok)
}
