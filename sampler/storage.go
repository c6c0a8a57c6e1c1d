package sampler

import (
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{
		root: root,
	}
}

// FileStorage keeps one yaml file per curve key under root.
type FileStorage struct {
	root string
}

func (stg *FileStorage) fileNameByKey(key string) string {
	return path.Join(stg.root, key)
}

func (stg *FileStorage) Load(key string) (ps []Point, err error) {
	d, err := os.ReadFile(stg.fileNameByKey(key))
	if err != nil {
		return
	}

	err = yaml.Unmarshal(d, &ps)

	return
}

func (stg *FileStorage) Save(key string, ps []Point) (err error) {
	_ = os.MkdirAll(stg.root, 0700)

	d, err := yaml.Marshal(ps)
	if err != nil {
		return
	}

	err = os.WriteFile(stg.fileNameByKey(key), d, 0600)

	return
}
