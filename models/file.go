package models

// FileRecord is a single regular file discovered during collection.
// Hash stays empty until the hashing phase fills it in.
type FileRecord struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Hash string `json:"hash,omitempty"`
}
