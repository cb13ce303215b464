package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWeaponDefinitionsOverlaysLibrary(t *testing.T) {
	t.Cleanup(ResetWeaponLibrary)

	path := filepath.Join(t.TempDir(), "weapons.yaml")
	data := `
- kind: SWORD
  name: Claymore
  damage: 99
  length: 70
- kind: ""
  damage: 1
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	require.NoError(t, LoadWeaponDefinitions(path))

	sword := GetWeapon(WeaponSword)
	assert.Equal(t, "Claymore", sword.Name)
	assert.Equal(t, 99.0, sword.Damage)

	// Запись с пустым видом пропущена, остальная библиотека на месте
	assert.Equal(t, "Spear", GetWeapon(WeaponSpear).Name)
}

func TestLoadWeaponDefinitionsMissingFile(t *testing.T) {
	err := LoadWeaponDefinitions(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadWeaponDefinitionsMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weapons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	assert.Error(t, LoadWeaponDefinitions(path))
}

func TestGetWeaponFallsBackToNeutralStub(t *testing.T) {
	def := GetWeapon("CHAINSAW")
	assert.Equal(t, WeaponUnarmed, def.Kind)
	assert.Zero(t, def.Damage)
	assert.Zero(t, def.Length)
}

func TestWeaponKindPredicates(t *testing.T) {
	assert.True(t, WeaponSword.CanDealBodyDamage())
	assert.True(t, WeaponScythe.CanDealBodyDamage())
	assert.False(t, WeaponBow.CanDealBodyDamage())
	assert.False(t, WeaponShield.CanDealBodyDamage())
	assert.False(t, WeaponStaff.CanDealBodyDamage())

	assert.True(t, WeaponShield.IsArmed())
	assert.False(t, WeaponUnarmed.IsArmed())
	assert.False(t, WeaponKind("").IsArmed())
}
