// Package adentry decodes the AppleDouble entry table.
package adentry

type (
	// ID is the entry identifier; it tells what kind of metadata an entry describes.
	ID uint32

	Entry struct {
		ID     ID     `json:"id"`
		Offset uint32 `json:"offset"`
		Length uint32 `json:"length"`
	}
)

const (
	DataFork       = ID(1)
	ResourceFork   = ID(2)
	Name           = ID(3)
	Comment        = ID(4)
	IconBW         = ID(5)
	IconColor      = ID(6)
	FileInfo       = ID(7) // v1 only, combines FileDatesInfo and MacFileInfo
	FileDatesInfo  = ID(8)
	FinderInfo     = ID(9)
	MacFileInfo    = ID(10)
	ProDOSFileInfo = ID(11)
	MSDOSFileInfo  = ID(12)
	ShortName      = ID(13)
	AFPFileInfo    = ID(14)
	DirectoryID    = ID(15)
)

const (
	DefaultEntrySize = 12
)
