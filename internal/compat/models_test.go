package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompatibleModels_MappedModel(t *testing.T) {
	assert.Equal(t, []string{"Mavic 3"}, CompatibleModels("Mavic 3 Pro"))
	assert.Equal(t, []string{"Matrice 200"}, CompatibleModels("Matrice 210 RTK V2"))
	assert.Equal(t, []string{"X820", "X1200"}, CompatibleModels("Dahua X1200"))
}

func TestCompatibleModels_CaseInsensitiveKey(t *testing.T) {
	assert.Equal(t, []string{"Mavic 3"}, CompatibleModels("mavic 3 pro"))
	assert.Equal(t, []string{"Phantom 4"}, CompatibleModels("PHANTOM 4 RTK"))
}

func TestCompatibleModels_SelfFallback(t *testing.T) {
	assert.Equal(t, []string{"Wingtra One"}, CompatibleModels("Wingtra One"))
}

func TestCompatibleModels_EmptyModel(t *testing.T) {
	assert.Nil(t, CompatibleModels(""))
}

func TestIsAccessoryCompatible_EmptyListAlwaysCompatible(t *testing.T) {
	assert.True(t, IsAccessoryCompatible(nil, "Mavic 3 Pro"))
	assert.True(t, IsAccessoryCompatible([]string{}, "Mavic 3 Pro"))
	assert.True(t, IsAccessoryCompatible(nil, ""))
}

func TestIsAccessoryCompatible_EmptyModelAlwaysCompatible(t *testing.T) {
	assert.True(t, IsAccessoryCompatible([]string{"Phantom 4"}, ""))
}

func TestIsAccessoryCompatible_FamilyMatch(t *testing.T) {
	// Drone-7 (Mavic 3 Pro) com bateria extra declarada para "Mavic 3"
	assert.True(t, IsAccessoryCompatible([]string{"Mavic 3"}, "Mavic 3 Pro"))

	// Filtro ND declarado só para Phantom 4 não serve no Mavic
	assert.False(t, IsAccessoryCompatible([]string{"Phantom 4"}, "Mavic 3 Pro"))
}

func TestIsAccessoryCompatible_SubstringBothDirections(t *testing.T) {
	// Família contida na entrada do catálogo
	assert.True(t, IsAccessoryCompatible([]string{"Mavic 3 Series"}, "Mavic 3 Cine"))

	// Entrada do catálogo contida na família
	assert.True(t, IsAccessoryCompatible([]string{"Matrice"}, "Matrice 210 RTK"))
}

func TestIsAccessoryCompatible_CaseInsensitiveEntries(t *testing.T) {
	assert.True(t, IsAccessoryCompatible([]string{"mavic 3"}, "Mavic 3 Classic"))
	assert.True(t, IsAccessoryCompatible([]string{"MATRICE 300"}, "Matrice 30T"))
}

func TestIsAccessoryCompatible_LooseMiniFallback(t *testing.T) {
	// "Mini" como token de família casa com qualquer entrada que contenha
	// "Mini" como substring. Comportamento intencional para texto livre.
	assert.True(t, IsAccessoryCompatible([]string{"Mini 2"}, "Mavic Mini"))
	assert.True(t, IsAccessoryCompatible([]string{"Mini 3"}, "DJI Mini SE"))
}

func TestIsAccessoryCompatible_SelfFallbackMatching(t *testing.T) {
	// Modelo fora da tabela usa o próprio literal como família
	assert.True(t, IsAccessoryCompatible([]string{"Wingtra"}, "Wingtra One"))
	assert.True(t, IsAccessoryCompatible([]string{"Wingtra One GEN II"}, "Wingtra One"))
	assert.False(t, IsAccessoryCompatible([]string{"eBee X"}, "Wingtra One"))
}

func TestEquipmentModels_KnownManufacturers(t *testing.T) {
	for _, brand := range []string{"DJI", "Autel Robotics", "Dahua", "Parrot", "Skydio", "Yuneec"} {
		assert.NotEmpty(t, EquipmentModels[brand], brand)
	}
}

func TestModelCompatibilityMap_EveryFamilyTokenMatchesItsModel(t *testing.T) {
	for model, families := range modelCompatibilityMap {
		for _, family := range families {
			assert.True(t, IsAccessoryCompatible([]string{family}, model),
				"modelo %q deveria aceitar acessório da família %q", model, family)
		}
	}
}
