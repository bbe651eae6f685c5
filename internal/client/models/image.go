package models

// ImageFile is a file picked for a profile image upload.
// Data may be nil when the file was too large to read.
type ImageFile struct {
	Name string
	Type string
	Size int64
	Data []byte
}
