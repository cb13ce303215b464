// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadWeaponDefinitions читает yaml-файл со списком определений оружия и
// накладывает их поверх библиотеки. Записи с пустым видом пропускаются.
// Отсутствие файла — не ошибка уровня симуляции: вызывающий код логирует
// и продолжает со встроенными значениями.
func LoadWeaponDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := yaml.Unmarshal(data, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	loaded := 0
	for _, def := range weaponDefs {
		if def.Kind == "" {
			continue
		}
		WeaponLibrary[def.Kind] = def
		loaded++
	}

	fmt.Printf("Loaded %d weapon definitions from %s\n", loaded, path)
	return nil
}
