package archive

type Storage interface {
	Save(r *Record) error
	Load(id uint64) (*Record, error)
	List() ([]*Record, error)
	Remove(id uint64) error
}
