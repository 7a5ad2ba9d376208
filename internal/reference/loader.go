package reference

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"smartenum/internal/smartenum"
)

// LoadEnumCatalog читает все справочники из папки (*.yaml, *.yml, *.toml).
// Файлы разбираются сразу, семейства инициализируются лениво.
func LoadEnumCatalog(dir string, opts ...smartenum.Option) (Catalog, error) {
	result := make(Catalog)
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(file.Name()))
		if ext != ".yaml" && ext != ".yml" && ext != ".toml" {
			continue
		}
		path := filepath.Join(dir, file.Name())
		enumDir, err := decodeFile(path, ext)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		// Имя справочника — из enumDir.Name или из имени файла
		if enumDir.Name == "" {
			enumDir.Name = strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		}
		if err := result.Add(enumDir.Family(opts...).View()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return result, nil
}

func decodeFile(path, ext string) (EnumDirectory, error) {
	var enumDir EnumDirectory
	data, err := os.ReadFile(path)
	if err != nil {
		return enumDir, err
	}
	if ext == ".toml" {
		err = toml.Unmarshal(data, &enumDir)
	} else {
		err = yaml.Unmarshal(data, &enumDir)
	}
	return enumDir, err
}
