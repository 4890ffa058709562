package adentry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

var NameByID = map[ID]string{
	DataFork:       "data_fork",
	ResourceFork:   "resource_fork",
	Name:           "name",
	Comment:        "comment",
	IconBW:         "icon_bw",
	IconColor:      "icon_color",
	FileInfo:       "file_info",
	FileDatesInfo:  "file_dates_info",
	FinderInfo:     "finder_info",
	MacFileInfo:    "mac_file_info",
	ProDOSFileInfo: "prodos_file_info",
	MSDOSFileInfo:  "msdos_file_info",
	ShortName:      "short_name",
	AFPFileInfo:    "afp_file_info",
	DirectoryID:    "directory_id",
}

var idByName = lo.SliceToMap(
	lo.Keys(NameByID),
	func(id ID) (string, ID) {
		return NameByID[id], id
	},
)

func (id ID) String() string {
	name, ok := NameByID[id]
	if !ok {
		return fmt.Sprintf("unknown_%d", uint32(id))
	}
	return name
}

// ParseID accepts either a known entry name ("finder_info") or a decimal identifier.
func ParseID(s string) (ID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if id, ok := idByName[s]; ok {
		return id, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf(`ParseID error: unknown entry "%s"`, s)
	}
	return ID(n), nil
}
