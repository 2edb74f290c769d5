package domain

// File is a generic attachment record. The same table backs deliveryman
// avatars and order signatures; this service only references files by id.
type File struct {
	ID   int64
	Path string
	URL  string
}
