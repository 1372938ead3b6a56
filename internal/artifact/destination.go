package artifact

// Destination selects where Press puts the preprint: a fixed release
// directory, or the archive directory under a timestamped name.
type Destination struct {
	dir     string
	archive bool
}

// Release presses into outputDir/dir keeping the document name unchanged.
func Release(dir string) Destination {
	return Destination{dir: dir}
}

// Archive presses into the configured archive directory under a stamped name.
var Archive = Destination{archive: true}

// IsArchive reports whether d is the archive sentinel.
func (d Destination) IsArchive() bool {
	return d.archive
}

// Dir returns the release directory name; it is empty for Archive.
func (d Destination) Dir() string {
	return d.dir
}

func (d Destination) String() string {
	if d.archive {
		return "archive"
	}
	return d.dir
}
